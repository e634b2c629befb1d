package inventory

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		total    int
		want     int
	}{
		{"exact multiple", 50, 100, 2},
		{"partial last page", 50, 101, 3},
		{"fewer than one page", 25, 10, 1},
		{"empty inventory", 25, 0, 1},
		{"all sentinel", 999999, 1234, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.pageSize)
			p.SetTotal(tt.total)
			if got := p.TotalPages(); got != tt.want {
				t.Errorf("TotalPages() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPrevNextClamping(t *testing.T) {
	p := NewPagination(50)
	p.SetTotal(120) // 3 pages

	if p.CanPrev() {
		t.Error("CanPrev() on page 1 should be false")
	}
	if p.Prev() {
		t.Error("Prev() on page 1 should not change anything")
	}

	if !p.Next() || p.Page != 2 {
		t.Fatalf("Next() should advance to page 2, got %d", p.Page)
	}
	if !p.Next() || p.Page != 3 {
		t.Fatalf("Next() should advance to page 3, got %d", p.Page)
	}

	if p.CanNext() {
		t.Error("CanNext() on the last page should be false")
	}
	if p.Next() {
		t.Error("Next() on the last page should not change anything")
	}
}

func TestSetPageSizeResetsPage(t *testing.T) {
	p := NewPagination(50)
	p.SetTotal(500)
	p.Page = 2

	// Changing page size invalidates the old offset: back to page 1,
	// and exactly one reload is signalled.
	if !p.SetPageSize(100) {
		t.Fatal("SetPageSize(100) should report a change")
	}
	if p.Page != 1 {
		t.Errorf("Page = %d after page-size change, want 1", p.Page)
	}
	if p.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", p.PageSize)
	}

	// Setting the same size again is not a change and must not signal
	// another reload.
	if p.SetPageSize(100) {
		t.Error("SetPageSize with the same size should report no change")
	}
}

func TestSetTotalClampsPage(t *testing.T) {
	p := NewPagination(25)
	p.SetTotal(100)
	p.Page = 4

	// The inventory shrank between fetches.
	p.SetTotal(30)
	if p.Page != 2 {
		t.Errorf("Page = %d after shrink, want 2", p.Page)
	}

	p.SetTotal(-5)
	if p.Total != 0 {
		t.Errorf("Total = %d, want 0 for negative input", p.Total)
	}
}

func TestRowNumber(t *testing.T) {
	p := NewPagination(50)
	p.Page = 2

	if got := p.RowNumber(0); got != 51 {
		t.Errorf("RowNumber(0) on page 2 = %d, want 51", got)
	}
	if got := p.RowNumber(9); got != 60 {
		t.Errorf("RowNumber(9) on page 2 = %d, want 60", got)
	}
}
