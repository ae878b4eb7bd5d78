package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"keuanganku/internal/categories"
	apperrors "keuanganku/internal/errors"
	"keuanganku/internal/ledger"
	"keuanganku/internal/models"
	"keuanganku/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// CreateTransaction creates a new income or expense transaction for a
// user's account. The category must belong to the fixed vocabulary for the
// transaction's type; the transfer category is reserved for CreateTransfer.
func (s *transactionService) CreateTransaction(
	userID, accountID uint,
	transactionType models.TransactionType,
	amount int64,
	category, description, ownerTag string,
	date time.Time,
) (*models.Transaction, error) {
	// Validate input
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	if accountID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	if category == categories.Transfer || !categories.IsValidForType(category, transactionType) {
		return nil, apperrors.ErrInvalidCategory
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	// Get the account to ensure it exists and belongs to the user
	account, err := s.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   account.ID,
		Type:        transactionType,
		Amount:      amount,
		Date:        date,
		Description: description,
		Category:    category,
		OwnerTag:    ownerTag,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// CreateTransfer realizes a transfer intent as a pair of transactions
// inserted in a single database transaction. If the store somehow commits
// only one leg, the distinct partial-transfer error is returned so the
// caller can reconcile manually instead of treating it as an ordinary
// failed insert.
func (s *transactionService) CreateTransfer(userID uint, transfer ledger.Transfer) ([]models.Transaction, error) {
	legs, err := ledger.Compose(transfer)
	if err != nil {
		return nil, err
	}

	// Both accounts must exist and belong to the user
	if _, err := s.accountService.GetAccountByID(userID, transfer.FromAccountID); err != nil {
		return nil, err
	}
	if _, err := s.accountService.GetAccountByID(userID, transfer.ToAccountID); err != nil {
		return nil, err
	}

	for i := range legs {
		legs[i].UserID = userID
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&legs).Error
	})
	if err != nil {
		var persisted int64
		s.db.Model(&models.Transaction{}).
			Where("id IN ?", []uint{legs[0].ID, legs[1].ID}).
			Count(&persisted)
		return nil, transferFailure(persisted, err)
	}

	return legs, nil
}

// transferFailure classifies a failed pair insert. Exactly one persisted
// leg is a data-integrity error requiring manual reconciliation, distinct
// from an ordinary failed insert where nothing reached the store.
func transferFailure(persisted int64, err error) error {
	if persisted == 1 {
		return apperrors.Wrap(apperrors.ErrPartialTransfer, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// GetUserTransactions retrieves the user's transactions most-recent-first,
// narrowed by the given filter criteria and paged. Filtering happens in
// memory over the full ordered set: the criteria are resolved against "now"
// at evaluation time and collections stay small, which keeps the filter a
// pure function instead of scattered SQL fragments.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, criteria ledger.Criteria) (*pagination.PageResponse[models.Transaction], error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	filtered := ledger.Filter(transactions, criteria, time.Now())

	result := pagination.PageSlice(filtered, page)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction edits a transaction in place. Every field is editable
// post-creation; only non-nil fields are applied. Transfer legs are
// ordinary transactions here: editing one leg never cascades to the other.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	newType := transaction.Type
	if fields.Type != nil {
		switch *fields.Type {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
		default:
			return nil, apperrors.ErrInvalidTransactionType
		}
		newType = *fields.Type
		updates["type"] = *fields.Type
	}

	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *fields.Amount
	}

	if fields.Category != nil {
		if !categories.IsValidForType(*fields.Category, newType) {
			return nil, apperrors.ErrInvalidCategory
		}
		updates["category"] = *fields.Category
	} else if fields.Type != nil && !categories.IsValidForType(transaction.Category, newType) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, "category does not match the new transaction type")
	}

	if fields.AccountID != nil {
		if _, err := s.accountService.GetAccountByID(userID, *fields.AccountID); err != nil {
			return nil, err
		}
		updates["account_id"] = *fields.AccountID
	}

	if fields.Date != nil {
		updates["date"] = *fields.Date
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.OwnerTag != nil {
		updates["owner_tag"] = *fields.OwnerTag
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", transaction.ID).First(transaction).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction removes a single transaction, irreversibly. Balances
// are derived from the remaining log, so no balance bookkeeping happens
// here; deleting one transfer leg leaves the other untouched.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteAllTransactions wipes the user's entire transaction log.
// Account baselines are untouched, so every balance falls back to its
// initial value.
func (s *transactionService) DeleteAllTransactions(userID uint) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
