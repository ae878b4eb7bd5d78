// Package ledger holds the pure domain computations of the tracker:
// balance derivation, transfer composition, and transaction filtering.
// Every function takes immutable snapshots of in-memory collections and
// returns derived values; persistence lives in the services layer.
package ledger

import "keuanganku/internal/models"

// AccountBalance pairs an account with its derived current balance.
type AccountBalance struct {
	Account models.Account `json:"account"`
	Balance int64          `json:"balance"`
}

// SignedAmount returns the balance contribution of a transaction:
// positive for income, negative for expense.
func SignedAmount(t models.Transaction) int64 {
	if t.Type == models.TransactionTypeIncome {
		return t.Amount
	}
	return -t.Amount
}

// Balances computes each account's current balance: the stored initial
// balance plus the sum of signed amounts of every transaction referencing
// it. The sum is commutative, so the order of the transactions slice never
// affects the result. Transactions referencing an account not present in
// accounts contribute nothing; callers that care should surface them via
// Orphans. The returned slice preserves the order of accounts.
func Balances(accounts []models.Account, transactions []models.Transaction) []AccountBalance {
	sums := make(map[uint]int64, len(accounts))
	for _, a := range accounts {
		sums[a.ID] = a.InitialBalance
	}

	for _, t := range transactions {
		if _, ok := sums[t.AccountID]; !ok {
			continue
		}
		sums[t.AccountID] += SignedAmount(t)
	}

	balances := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		balances = append(balances, AccountBalance{Account: a, Balance: sums[a.ID]})
	}
	return balances
}

// Orphans returns the transactions that reference no account in accounts.
// Such records indicate a referential inconsistency in the stored data;
// they are excluded from every balance and should be logged, not fixed.
func Orphans(accounts []models.Account, transactions []models.Transaction) []models.Transaction {
	known := make(map[uint]struct{}, len(accounts))
	for _, a := range accounts {
		known[a.ID] = struct{}{}
	}

	var orphans []models.Transaction
	for _, t := range transactions {
		if _, ok := known[t.AccountID]; !ok {
			orphans = append(orphans, t)
		}
	}
	return orphans
}

// Total sums the derived balances across all accounts.
func Total(balances []AccountBalance) int64 {
	var total int64
	for _, b := range balances {
		total += b.Balance
	}
	return total
}

// ByOwner groups derived balances by the account's owner tag. Accounts
// without a tag fall into the "" bucket.
func ByOwner(balances []AccountBalance) map[string]int64 {
	byOwner := make(map[string]int64)
	for _, b := range balances {
		byOwner[b.Account.OwnerTag] += b.Balance
	}
	return byOwner
}
