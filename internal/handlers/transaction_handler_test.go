package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"keuanganku/internal/ledger"
	"keuanganku/internal/testutil"
	"keuanganku/internal/validator"
)

func filterContext(t *testing.T, query string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validator.Register()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/transactions?"+query, nil)
	return c
}

func TestParseFilterCriteria(t *testing.T) {
	t.Run("empty_query_matches_everything", func(t *testing.T) {
		criteria, err := parseFilterCriteria(filterContext(t, ""))
		testutil.AssertNoError(t, err)

		if criteria != (ledger.Criteria{}) {
			t.Errorf("expected zero criteria, got %+v", criteria)
		}
	})

	t.Run("parses_preset_category_and_account", func(t *testing.T) {
		criteria, err := parseFilterCriteria(filterContext(t, "preset=month&category=food&account_id=7"))
		testutil.AssertNoError(t, err)

		if criteria.Preset != ledger.PresetThisMonth {
			t.Errorf("expected month preset, got %q", criteria.Preset)
		}
		if criteria.Category != "food" {
			t.Errorf("expected category food, got %q", criteria.Category)
		}
		if criteria.AccountID != 7 {
			t.Errorf("expected account 7, got %d", criteria.AccountID)
		}
	})

	t.Run("rejects_unknown_preset", func(t *testing.T) {
		_, err := parseFilterCriteria(filterContext(t, "preset=quarter"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		_, err := parseFilterCriteria(filterContext(t, "category=groceries"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("explicit_dates_switch_to_custom_range", func(t *testing.T) {
		criteria, err := parseFilterCriteria(filterContext(t, "from_date=2024-07-01&to_date=2024-07-15"))
		testutil.AssertNoError(t, err)

		if criteria.Preset != ledger.PresetCustom {
			t.Errorf("expected custom preset, got %q", criteria.Preset)
		}
		if criteria.From == nil || !criteria.From.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected from 2024-07-01, got %v", criteria.From)
		}
		if criteria.To == nil || !criteria.To.Equal(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected to 2024-07-15, got %v", criteria.To)
		}
	})

	t.Run("rejects_malformed_date", func(t *testing.T) {
		_, err := parseFilterCriteria(filterContext(t, "from_date=15-07-2024"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("owner_tag_sets_exact_match", func(t *testing.T) {
		criteria, err := parseFilterCriteria(filterContext(t, "owner_tag=alice"))
		testutil.AssertNoError(t, err)

		if criteria.Owner == nil || *criteria.Owner != "alice" {
			t.Errorf("expected owner alice, got %v", criteria.Owner)
		}
	})

	t.Run("untagged_takes_precedence_over_owner_tag", func(t *testing.T) {
		criteria, err := parseFilterCriteria(filterContext(t, "untagged=true&owner_tag=alice"))
		testutil.AssertNoError(t, err)

		if criteria.Owner == nil || *criteria.Owner != "" {
			t.Errorf("expected untagged-only owner filter, got %v", criteria.Owner)
		}
	})
}
