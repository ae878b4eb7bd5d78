// Package categories defines the fixed transaction category vocabulary.
package categories

import "keuanganku/internal/models"

// Transfer is the reserved category applied to both legs of a transfer.
const Transfer = "transfer"

// Category is one entry of the fixed vocabulary.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Income contains the categories valid for income transactions.
var Income = []Category{
	{Value: "salary", Label: "Salary"},
	{Value: "investments", Label: "Investments"},
	{Value: "other_income", Label: "Other (Income)"},
}

// Expense contains the categories valid for expense transactions.
var Expense = []Category{
	{Value: "food", Label: "Food"},
	{Value: "transportation", Label: "Transportation"},
	{Value: "housing", Label: "Housing"},
	{Value: "health", Label: "Health"},
	{Value: "entertainment", Label: "Entertainment"},
	{Value: "shopping", Label: "Shopping"},
	{Value: "uncategorized", Label: "Uncategorized"},
	{Value: "other_expense", Label: "Other (Expense)"},
}

var labels = buildLabels()

func buildLabels() map[string]string {
	m := make(map[string]string, len(Income)+len(Expense)+1)
	for _, c := range Income {
		m[c.Value] = c.Label
	}
	for _, c := range Expense {
		m[c.Value] = c.Label
	}
	m[Transfer] = "Transfer"
	return m
}

// IsValid reports whether value belongs to the vocabulary,
// including the reserved transfer category.
func IsValid(value string) bool {
	_, ok := labels[value]
	return ok
}

// IsValidForType reports whether value is usable on a transaction of the
// given type. The transfer category is valid on both income and expense
// legs; every other category belongs to exactly one type.
func IsValidForType(value string, t models.TransactionType) bool {
	if value == Transfer {
		return true
	}
	var list []Category
	switch t {
	case models.TransactionTypeIncome:
		list = Income
	case models.TransactionTypeExpense:
		list = Expense
	default:
		return false
	}
	for _, c := range list {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Label returns the display label for a category value, or the value
// itself when it is not part of the vocabulary.
func Label(value string) string {
	if l, ok := labels[value]; ok {
		return l
	}
	return value
}
