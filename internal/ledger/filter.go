package ledger

import (
	"time"

	"keuanganku/internal/models"
)

// DatePreset names a relative date range resolved against "now" at
// evaluation time.
type DatePreset string

const (
	PresetAll       DatePreset = "all"
	PresetToday     DatePreset = "today"
	PresetThisWeek  DatePreset = "week"
	PresetThisMonth DatePreset = "month"
	PresetLastMonth DatePreset = "last_month"
	PresetThisYear  DatePreset = "year"
	PresetCustom    DatePreset = "custom"
)

// ValidPreset reports whether p is a known date preset.
func ValidPreset(p DatePreset) bool {
	switch p {
	case PresetAll, PresetToday, PresetThisWeek, PresetThisMonth,
		PresetLastMonth, PresetThisYear, PresetCustom:
		return true
	}
	return false
}

// Criteria is a set of independent, individually optional filters combined
// with logical AND. The zero value matches everything.
type Criteria struct {
	// Preset selects a named date range. PresetCustom uses From/To, which
	// must both be set or the date filter has no effect. The zero value
	// and PresetAll apply no date constraint.
	Preset DatePreset
	From   *time.Time
	To     *time.Time

	// WeekStart is the first day of the week for PresetThisWeek.
	// The zero value is Sunday.
	WeekStart time.Weekday

	// Category matches transactions with exactly this category; "" = all.
	Category string

	// AccountID matches transactions against this account; 0 = all.
	AccountID uint

	// Owner filters by owner tag: nil = all, pointer to "" = only
	// transactions without a tag, otherwise exact match.
	Owner *string
}

// Filter returns the transactions matching all active criteria, preserving
// the relative order of the input. The input slice is never modified and
// the result is always freshly allocated, so re-applying the same criteria
// yields the same result.
func Filter(transactions []models.Transaction, c Criteria, now time.Time) []models.Transaction {
	from, to := c.dateRange(now)

	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if from != nil && t.Date.Before(*from) {
			continue
		}
		if to != nil && t.Date.After(*to) {
			continue
		}
		if c.Category != "" && t.Category != c.Category {
			continue
		}
		if c.AccountID != 0 && t.AccountID != c.AccountID {
			continue
		}
		if c.Owner != nil && t.OwnerTag != *c.Owner {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// dateRange resolves the criteria's date constraint to inclusive bounds.
// Non-custom presets end at now.
func (c Criteria) dateRange(now time.Time) (from, to *time.Time) {
	switch c.Preset {
	case PresetToday:
		start := startOfDay(now)
		return &start, &now
	case PresetThisWeek:
		start := startOfWeek(now, c.WeekStart)
		return &start, &now
	case PresetThisMonth:
		start := startOfMonth(now)
		return &start, &now
	case PresetLastMonth:
		end := startOfMonth(now).Add(-time.Nanosecond)
		start := startOfMonth(end)
		return &start, &end
	case PresetThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &start, &now
	case PresetCustom:
		if c.From == nil || c.To == nil {
			return nil, nil
		}
		return c.From, c.To
	default:
		return nil, nil
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := startOfDay(t)
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
