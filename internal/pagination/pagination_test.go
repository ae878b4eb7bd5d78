package pagination

import "testing"

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("defaults_apply", func(t *testing.T) {
		result := PageSlice(items, PageRequest{})

		if result.Page != 1 || result.PageSize != 20 {
			t.Errorf("expected defaults page=1 size=20, got %d/%d", result.Page, result.PageSize)
		}
		if len(result.Data) != 5 || result.TotalItems != 5 || result.TotalPages != 1 {
			t.Errorf("expected all items on one page, got %d items, %d total, %d pages",
				len(result.Data), result.TotalItems, result.TotalPages)
		}
	})

	t.Run("returns_requested_window", func(t *testing.T) {
		result := PageSlice(items, PageRequest{Page: 2, PageSize: 2})

		if len(result.Data) != 2 || result.Data[0] != 3 || result.Data[1] != 4 {
			t.Errorf("expected [3 4], got %v", result.Data)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		result := PageSlice(items, PageRequest{Page: 3, PageSize: 2})

		if len(result.Data) != 1 || result.Data[0] != 5 {
			t.Errorf("expected [5], got %v", result.Data)
		}
	})

	t.Run("page_past_the_end_is_empty", func(t *testing.T) {
		result := PageSlice(items, PageRequest{Page: 10, PageSize: 2})

		if len(result.Data) != 0 {
			t.Errorf("expected empty page, got %v", result.Data)
		}
		if result.TotalItems != 5 {
			t.Errorf("expected total 5, got %d", result.TotalItems)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		result := PageSlice([]int{}, PageRequest{})

		if result.Data == nil {
			t.Error("expected non-nil empty data slice")
		}
		if result.TotalItems != 0 || result.TotalPages != 0 {
			t.Errorf("expected zero totals, got %d items %d pages", result.TotalItems, result.TotalPages)
		}
	})
}
