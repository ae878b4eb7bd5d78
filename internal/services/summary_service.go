package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"keuanganku/internal/categories"
	apperrors "keuanganku/internal/errors"
	"keuanganku/internal/ledger"
	"keuanganku/internal/logger"
	"keuanganku/internal/models"
)

// summaryService computes the derived reporting views. It loads snapshots
// from the store and delegates the math to the ledger package.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// GetBalances returns every account with its derived balance plus the
// total and per-owner-tag subtotals. Transactions referencing a missing
// account are excluded from every balance and logged as a data-integrity
// warning; they never fail the request.
func (s *summaryService) GetBalances(userID uint) (*BalanceSummary, error) {
	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if orphans := ledger.Orphans(accounts, transactions); len(orphans) > 0 {
		logger.Get().Warnw("transactions reference missing accounts; excluded from balances",
			"user_id", userID,
			"count", len(orphans),
		)
	}

	balances := ledger.Balances(accounts, transactions)
	return &BalanceSummary{
		Accounts: balances,
		Total:    ledger.Total(balances),
		ByOwner:  ledger.ByOwner(balances),
	}, nil
}

// GetSpendingByCategory sums expenses per category over [from, to],
// ordered by descending total. Transfer legs are bookkeeping, not
// spending, so the transfer category is excluded.
func (s *summaryService) GetSpendingByCategory(userID uint, from, to time.Time) (*SpendingSummary, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND type = ? AND category <> ? AND date >= ? AND date <= ?",
		userID, models.TransactionTypeExpense, categories.Transfer, from, to).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[string]int64)
	for _, t := range transactions {
		totals[t.Category] += t.Amount
	}

	summary := &SpendingSummary{Items: make([]CategorySpending, 0, len(totals))}
	for category, total := range totals {
		summary.Items = append(summary.Items, CategorySpending{
			Category: category,
			Label:    categories.Label(category),
			Total:    total,
		})
		summary.TotalSpent += total
	}

	sort.Slice(summary.Items, func(i, j int) bool {
		if summary.Items[i].Total != summary.Items[j].Total {
			return summary.Items[i].Total > summary.Items[j].Total
		}
		return summary.Items[i].Category < summary.Items[j].Category
	})

	return summary, nil
}

// GetMonthlyTrend returns income and expense totals per calendar month for
// the trailing months window, oldest first. Transfer legs are excluded so
// a transfer does not inflate both sides of the chart.
func (s *summaryService) GetMonthlyTrend(userID uint, months int) ([]MonthlyTrendPoint, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND category <> ? AND date >= ?",
		userID, categories.Transfer, start).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type bucket struct{ income, expense int64 }
	byMonth := make(map[string]*bucket)
	for _, t := range transactions {
		key := t.Date.Format("2006-01")
		b, ok := byMonth[key]
		if !ok {
			b = &bucket{}
			byMonth[key] = b
		}
		if t.Type == models.TransactionTypeIncome {
			b.income += t.Amount
		} else {
			b.expense += t.Amount
		}
	}

	trend := make([]MonthlyTrendPoint, 0, months)
	for m := 0; m < months; m++ {
		key := start.AddDate(0, m, 0).Format("2006-01")
		point := MonthlyTrendPoint{Month: key}
		if b, ok := byMonth[key]; ok {
			point.Income = b.income
			point.Expense = b.expense
		}
		trend = append(trend, point)
	}

	return trend, nil
}
