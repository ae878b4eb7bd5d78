package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

func engine(t *testing.T) *playground.Validate {
	t.Helper()

	Register()
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		t.Fatal("expected the Gin binding engine to be go-playground/validator")
	}
	return v
}

func TestRegister(t *testing.T) {
	v := engine(t)

	cases := []struct {
		tag   string
		valid []string
		bad   []string
	}{
		{"transaction_type", []string{"income", "expense"}, []string{"refund", ""}},
		{"account_type", []string{"cash", "bank"}, []string{"investment", ""}},
		{"category", []string{"food", "salary", "transfer"}, []string{"groceries", ""}},
		{"date_preset", []string{"all", "today", "week", "month", "last_month", "year", "custom"}, []string{"quarter", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			for _, value := range tc.valid {
				if err := v.Var(value, tc.tag); err != nil {
					t.Errorf("expected %q to pass %s, got %v", value, tc.tag, err)
				}
			}
			for _, value := range tc.bad {
				if err := v.Var(value, tc.tag); err == nil {
					t.Errorf("expected %q to fail %s", value, tc.tag)
				}
			}
		})
	}
}
