package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeCash AccountType = "cash"
	AccountTypeBank AccountType = "bank"
)

// Account represents a balance-holding account. InitialBalance is the
// baseline before any tracked transaction; current balances are derived
// by the ledger and never written back here.
type Account struct {
	Base
	UserID         uint        `gorm:"not null;index" json:"user_id"`
	Name           string      `gorm:"not null" json:"name"`
	Type           AccountType `gorm:"not null" json:"type"`
	InitialBalance int64       `gorm:"type:bigint;not null;default:0" json:"initial_balance"`
	OwnerTag       string      `json:"owner_tag,omitempty"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
