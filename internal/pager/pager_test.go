package pager

import "testing"

func TestPaginateSplitsThirteenPostsAcrossTwoPages(t *testing.T) {
	p1 := Paginate(1, 10, 13)
	if p1.Offset != 0 || p1.Limit != 10 {
		t.Fatalf("page 1: expected window (0,10), got (%d,%d)", p1.Offset, p1.Limit)
	}
	if !p1.HasNext || p1.HasPrev {
		t.Fatalf("page 1: expected has_next and no has_previous, got next=%v prev=%v", p1.HasNext, p1.HasPrev)
	}

	p2 := Paginate(2, 10, 13)
	if p2.Offset != 10 || p2.Limit != 10 {
		t.Fatalf("page 2: expected window (10,10), got (%d,%d)", p2.Offset, p2.Limit)
	}
	if p2.HasNext || !p2.HasPrev {
		t.Fatalf("page 2: expected has_previous and no has_next, got next=%v prev=%v", p2.HasNext, p2.HasPrev)
	}
	if p2.NumPages != 2 || p2.Total != 13 {
		t.Fatalf("expected 2 pages over 13 items, got pages=%d total=%d", p2.NumPages, p2.Total)
	}
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		wantPage  int
		wantNext  bool
		wantPrev  bool
	}{
		{"below range", -3, 1, true, false},
		{"zero", 0, 1, true, false},
		{"past the end", 99, 3, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(tc.page, 10, 25)
			if p.Number != tc.wantPage {
				t.Fatalf("expected page %d, got %d", tc.wantPage, p.Number)
			}
			if p.HasNext != tc.wantNext || p.HasPrev != tc.wantPrev {
				t.Fatalf("page %d: got next=%v prev=%v", p.Number, p.HasNext, p.HasPrev)
			}
		})
	}
}

func TestPaginateEmptyCollectionHasOneEmptyPage(t *testing.T) {
	p := Paginate(1, 10, 0)
	if p.Number != 1 || p.NumPages != 1 {
		t.Fatalf("expected single page, got number=%d pages=%d", p.Number, p.NumPages)
	}
	if p.HasNext || p.HasPrev {
		t.Fatalf("empty listing should have no neighbors")
	}
}
