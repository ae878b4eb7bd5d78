package services

import (
	"testing"
	"time"

	"keuanganku/internal/ledger"
	"keuanganku/internal/models"
	"keuanganku/internal/testutil"
)

func TestGetBalances(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	accountService := NewAccountService(db)
	transactionService := NewTransactionService(db, accountService)
	service := NewSummaryService(db)
	user := testutil.CreateTestUser(t, db)

	bank := testutil.CreateTestAccount(t, db, user.ID, models.AccountTypeBank, 500000)
	cash := testutil.CreateTestTaggedAccount(t, db, user.ID, "alice", 100000)

	testutil.CreateTestTransaction(t, db, user.ID, bank.ID, models.TransactionTypeIncome, 300000, "salary")
	testutil.CreateTestTransaction(t, db, user.ID, cash.ID, models.TransactionTypeExpense, 5000, "food")

	summary, err := service.GetBalances(user.ID)
	testutil.AssertNoError(t, err)

	if len(summary.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(summary.Accounts))
	}
	if summary.Accounts[0].Balance != 800000 {
		t.Errorf("expected bank balance 800000, got %d", summary.Accounts[0].Balance)
	}
	if summary.Accounts[1].Balance != 95000 {
		t.Errorf("expected cash balance 95000, got %d", summary.Accounts[1].Balance)
	}
	if summary.Total != 895000 {
		t.Errorf("expected total 895000, got %d", summary.Total)
	}
	if summary.ByOwner["alice"] != 95000 {
		t.Errorf("expected alice subtotal 95000, got %d", summary.ByOwner["alice"])
	}
	if summary.ByOwner[""] != 800000 {
		t.Errorf("expected untagged subtotal 800000, got %d", summary.ByOwner[""])
	}

	t.Run("transfer_moves_funds_without_changing_total", func(t *testing.T) {
		_, err := transactionService.CreateTransfer(user.ID, ledger.Transfer{
			FromAccountID: bank.ID,
			ToAccountID:   cash.ID,
			Amount:        20000,
		})
		testutil.AssertNoError(t, err)

		summary, err := service.GetBalances(user.ID)
		testutil.AssertNoError(t, err)

		if summary.Accounts[0].Balance != 780000 {
			t.Errorf("expected bank balance 780000, got %d", summary.Accounts[0].Balance)
		}
		if summary.Accounts[1].Balance != 115000 {
			t.Errorf("expected cash balance 115000, got %d", summary.Accounts[1].Balance)
		}
		if summary.Total != 895000 {
			t.Errorf("expected total unchanged at 895000, got %d", summary.Total)
		}
	})

	t.Run("orphan_transactions_do_not_fail_the_request", func(t *testing.T) {
		orphan := &models.Transaction{
			UserID:    user.ID,
			AccountID: 99999,
			Type:      models.TransactionTypeIncome,
			Amount:    1000000,
			Category:  "salary",
			Date:      time.Now(),
		}
		if err := db.Create(orphan).Error; err != nil {
			t.Fatalf("failed to create orphan transaction: %v", err)
		}

		summary, err := service.GetBalances(user.ID)
		testutil.AssertNoError(t, err)

		if summary.Total != 895000 {
			t.Errorf("expected orphan excluded from total, got %d", summary.Total)
		}
	})
}

func TestGetSpendingByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	accountService := NewAccountService(db)
	transactionService := NewTransactionService(db, accountService)
	service := NewSummaryService(db)
	user := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestCashAccount(t, db, user.ID)
	second := testutil.CreateTestCashAccount(t, db, user.ID)

	date := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 23, 59, 59, 0, time.UTC)

	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeExpense, 30000, "food", date)
	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeExpense, 15000, "food", date)
	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeExpense, 60000, "housing", date)
	// Income and out-of-range records never count as spending
	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeIncome, 500000, "salary", date)
	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeExpense, 9999, "food", date.AddDate(0, -2, 0))

	_, err := transactionService.CreateTransfer(user.ID, ledger.Transfer{
		FromAccountID: account.ID,
		ToAccountID:   second.ID,
		Amount:        100000,
		Date:          date,
	})
	testutil.AssertNoError(t, err)

	summary, err := service.GetSpendingByCategory(user.ID, from, to)
	testutil.AssertNoError(t, err)

	if len(summary.Items) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(summary.Items))
	}
	if summary.Items[0].Category != "housing" || summary.Items[0].Total != 60000 {
		t.Errorf("expected housing 60000 first, got %s %d", summary.Items[0].Category, summary.Items[0].Total)
	}
	if summary.Items[1].Category != "food" || summary.Items[1].Total != 45000 {
		t.Errorf("expected food 45000 second, got %s %d", summary.Items[1].Category, summary.Items[1].Total)
	}
	if summary.TotalSpent != 105000 {
		t.Errorf("expected total spent 105000 with transfers excluded, got %d", summary.TotalSpent)
	}
}

func TestGetMonthlyTrend(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	accountService := NewAccountService(db)
	transactionService := NewTransactionService(db, accountService)
	service := NewSummaryService(db)
	user := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestCashAccount(t, db, user.ID)
	second := testutil.CreateTestCashAccount(t, db, user.ID)

	now := time.Now()
	// Last day of the previous month, safe on month ends
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeIncome, 300000, "salary", now)
	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeExpense, 40000, "food", now)
	testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeExpense, 25000, "housing", lastMonth)

	_, err := transactionService.CreateTransfer(user.ID, ledger.Transfer{
		FromAccountID: account.ID,
		ToAccountID:   second.ID,
		Amount:        999999,
	})
	testutil.AssertNoError(t, err)

	trend, err := service.GetMonthlyTrend(user.ID, 3)
	testutil.AssertNoError(t, err)

	if len(trend) != 3 {
		t.Fatalf("expected 3 months, got %d", len(trend))
	}

	current := trend[2]
	if current.Month != now.Format("2006-01") {
		t.Errorf("expected last point to be the current month, got %s", current.Month)
	}
	if current.Income != 300000 {
		t.Errorf("expected income 300000 with transfers excluded, got %d", current.Income)
	}
	if current.Expense != 40000 {
		t.Errorf("expected expense 40000 with transfers excluded, got %d", current.Expense)
	}

	previous := trend[1]
	if previous.Expense != 25000 {
		t.Errorf("expected previous month expense 25000, got %d", previous.Expense)
	}

	if trend[0].Income != 0 || trend[0].Expense != 0 {
		t.Errorf("expected empty oldest month, got income %d expense %d", trend[0].Income, trend[0].Expense)
	}

	t.Run("defaults_to_six_months", func(t *testing.T) {
		trend, err := service.GetMonthlyTrend(user.ID, 0)
		testutil.AssertNoError(t, err)
		if len(trend) != 6 {
			t.Errorf("expected 6 months by default, got %d", len(trend))
		}
	})
}
