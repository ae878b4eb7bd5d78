package ledger

import (
	"time"

	"keuanganku/internal/categories"
	apperrors "keuanganku/internal/errors"
	"keuanganku/internal/models"
)

// DefaultTransferDescription is used when a transfer carries no description.
const DefaultTransferDescription = "Transfer"

// Transfer is a user-facing intent to move funds between two accounts.
// It is never persisted as its own entity: Compose realizes it as exactly
// two ordinary transactions. The two legs share date, amount, and the
// reserved transfer category but carry no correlation identifier, so
// editing or deleting one leg does not cascade to the other. That is a
// known limitation, not an oversight.
type Transfer struct {
	FromAccountID uint      `json:"from_account_id"`
	ToAccountID   uint      `json:"to_account_id"`
	Amount        int64     `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description,omitempty"`
}

// Compose validates the intent and returns the two transactions realizing
// it: an expense on the source account and an income on the destination,
// both tagged with the transfer category. Replaying the pair through the
// ledger moves Amount from source to destination while leaving the sum of
// the two balances unchanged. Both records must be persisted atomically;
// anything less is a data-integrity error for the caller to surface.
func Compose(t Transfer) ([]models.Transaction, error) {
	if t.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transfer amount must be greater than zero")
	}
	if t.FromAccountID == 0 || t.ToAccountID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "both accounts are required")
	}
	if t.FromAccountID == t.ToAccountID {
		return nil, apperrors.ErrSameAccountTransfer
	}

	description := t.Description
	if description == "" {
		description = DefaultTransferDescription
	}

	date := t.Date
	if date.IsZero() {
		date = time.Now()
	}

	return []models.Transaction{
		{
			AccountID:   t.FromAccountID,
			Type:        models.TransactionTypeExpense,
			Amount:      t.Amount,
			Date:        date,
			Description: description,
			Category:    categories.Transfer,
		},
		{
			AccountID:   t.ToAccountID,
			Type:        models.TransactionTypeIncome,
			Amount:      t.Amount,
			Date:        date,
			Description: description,
			Category:    categories.Transfer,
		},
	}, nil
}
