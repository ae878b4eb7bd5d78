package services

import (
	"time"

	"keuanganku/internal/ledger"
	"keuanganku/internal/models"
	"keuanganku/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// AccountUpdateFields holds the optional fields of an account update.
// Nil fields are left unchanged.
type AccountUpdateFields struct {
	Name           *string
	InitialBalance *int64
	OwnerTag       *string
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID uint, name string, accountType models.AccountType, initialBalance int64, ownerTag string) (*models.Account, error)
	GetUserAccounts(userID uint) ([]models.Account, error)
	GetAccountByID(userID, accountID uint) (*models.Account, error)
	UpdateAccount(userID, accountID uint, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID uint) error
	ResetAllBalances(userID uint) error
}

// TransactionUpdateFields holds the optional fields of a transaction update.
// Nil fields are left unchanged.
type TransactionUpdateFields struct {
	AccountID   *uint
	Type        *models.TransactionType
	Amount      *int64
	Date        *time.Time
	Description *string
	Category    *string
	OwnerTag    *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, accountID uint, transactionType models.TransactionType, amount int64, category, description, ownerTag string, date time.Time) (*models.Transaction, error)
	CreateTransfer(userID uint, transfer ledger.Transfer) ([]models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, criteria ledger.Criteria) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	DeleteAllTransactions(userID uint) error
}

// BalanceSummary contains per-account balances with aggregate views.
type BalanceSummary struct {
	Accounts []ledger.AccountBalance `json:"accounts"`
	Total    int64                   `json:"total"`
	ByOwner  map[string]int64        `json:"by_owner"`
}

// CategorySpending is the expense total of one category over a period.
type CategorySpending struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Total    int64  `json:"total"`
}

// SpendingSummary contains the spending breakdown for a period.
type SpendingSummary struct {
	Items      []CategorySpending `json:"items"`
	TotalSpent int64              `json:"total_spent"`
}

// MonthlyTrendPoint is the income/expense total of one calendar month.
type MonthlyTrendPoint struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// SummaryServicer defines the contract for derived reporting views.
type SummaryServicer interface {
	GetBalances(userID uint) (*BalanceSummary, error)
	GetSpendingByCategory(userID uint, from, to time.Time) (*SpendingSummary, error)
	GetMonthlyTrend(userID uint, months int) ([]MonthlyTrendPoint, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
