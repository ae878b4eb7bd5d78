// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"keuanganku/internal/categories"
	"keuanganku/internal/ledger"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("account_type", validateAccountType)
		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("date_preset", validateDatePreset)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "bank":
		return true
	}
	return false
}

func validateCategory(fl validator.FieldLevel) bool {
	return categories.IsValid(fl.Field().String())
}

func validateDatePreset(fl validator.FieldLevel) bool {
	return ledger.ValidPreset(ledger.DatePreset(fl.Field().String()))
}
