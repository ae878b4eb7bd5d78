package ledger

import (
	"testing"
	"time"

	"keuanganku/internal/categories"
	"keuanganku/internal/models"
	"keuanganku/internal/testutil"
)

func TestCompose(t *testing.T) {
	t.Run("produces_matching_expense_and_income_legs", func(t *testing.T) {
		date := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

		legs, err := Compose(Transfer{
			FromAccountID: 1,
			ToAccountID:   2,
			Amount:        20000,
			Date:          date,
			Description:   "Move to wallet",
		})
		testutil.AssertNoError(t, err)

		if len(legs) != 2 {
			t.Fatalf("expected 2 legs, got %d", len(legs))
		}

		out, in := legs[0], legs[1]
		if out.AccountID != 1 || out.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense leg on source account, got account %d type %s", out.AccountID, out.Type)
		}
		if in.AccountID != 2 || in.Type != models.TransactionTypeIncome {
			t.Errorf("expected income leg on destination account, got account %d type %s", in.AccountID, in.Type)
		}
		for _, leg := range legs {
			if leg.Amount != 20000 {
				t.Errorf("expected amount 20000, got %d", leg.Amount)
			}
			if !leg.Date.Equal(date) {
				t.Errorf("expected shared date %v, got %v", date, leg.Date)
			}
			if leg.Category != categories.Transfer {
				t.Errorf("expected transfer category, got %q", leg.Category)
			}
			if leg.Description != "Move to wallet" {
				t.Errorf("expected shared description, got %q", leg.Description)
			}
		}
	})

	t.Run("replaying_legs_moves_funds_and_preserves_total", func(t *testing.T) {
		bank := account(1, 500000)
		cash := account(2, 100000)

		legs, err := Compose(Transfer{FromAccountID: 1, ToAccountID: 2, Amount: 20000})
		testutil.AssertNoError(t, err)

		balances := Balances([]models.Account{bank, cash}, legs)

		if balances[0].Balance != 480000 {
			t.Errorf("expected source balance 480000, got %d", balances[0].Balance)
		}
		if balances[1].Balance != 120000 {
			t.Errorf("expected destination balance 120000, got %d", balances[1].Balance)
		}
		if Total(balances) != 600000 {
			t.Errorf("expected total unchanged at 600000, got %d", Total(balances))
		}
	})

	t.Run("empty_description_defaults", func(t *testing.T) {
		legs, err := Compose(Transfer{FromAccountID: 1, ToAccountID: 2, Amount: 100})
		testutil.AssertNoError(t, err)

		for _, leg := range legs {
			if leg.Description != DefaultTransferDescription {
				t.Errorf("expected default description %q, got %q", DefaultTransferDescription, leg.Description)
			}
		}
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		before := time.Now()
		legs, err := Compose(Transfer{FromAccountID: 1, ToAccountID: 2, Amount: 100})
		testutil.AssertNoError(t, err)
		after := time.Now()

		if legs[0].Date.Before(before) || legs[0].Date.After(after) {
			t.Errorf("expected leg date near now, got %v", legs[0].Date)
		}
	})

	t.Run("same_account_rejected", func(t *testing.T) {
		_, err := Compose(Transfer{FromAccountID: 5, ToAccountID: 5, Amount: 100})
		testutil.AssertAppError(t, err, "SAME_ACCOUNT_TRANSFER")
	})

	t.Run("non_positive_amount_rejected", func(t *testing.T) {
		_, err := Compose(Transfer{FromAccountID: 1, ToAccountID: 2, Amount: 0})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = Compose(Transfer{FromAccountID: 1, ToAccountID: 2, Amount: -500})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_account_rejected", func(t *testing.T) {
		_, err := Compose(Transfer{FromAccountID: 0, ToAccountID: 2, Amount: 100})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = Compose(Transfer{FromAccountID: 1, ToAccountID: 0, Amount: 100})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
