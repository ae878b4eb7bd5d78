package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single dated income or expense record against
// one account. Amount is an unsigned magnitude in minor currency units;
// the sign is implied by Type and is never stored negative. OwnerTag is
// independent of the account's owner tag, so a transaction can be
// attributed to a person other than the account holder.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	OwnerTag    string          `json:"owner_tag,omitempty"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"account"`
}
