package orm_test

import (
	"testing"

	"github.com/shashiranjanraj/vanik/pkg/orm"
)

func TestNewPaginationClamping(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		total    int64
		wantPage int
		wantLast int
	}{
		{"first page", 1, 5, 1, 3},
		{"middle page", 2, 5, 2, 3},
		{"past the end clamps to last", 99, 5, 3, 3},
		{"zero clamps to first", 0, 5, 1, 3},
		{"negative clamps to first", -3, 5, 1, 3},
		{"empty set still has one page", 1, 0, 1, 1},
		{"past the end of empty set", 7, 0, 1, 1},
		{"exact multiple", 2, 4, 2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := orm.NewPagination(tc.page, 2, tc.total)
			if p.Page != tc.wantPage {
				t.Errorf("page: expected %d, got %d", tc.wantPage, p.Page)
			}
			if p.Pages != tc.wantLast {
				t.Errorf("pages: expected %d, got %d", tc.wantLast, p.Pages)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := orm.NewPagination(3, 2, 10)
	if got := p.Offset(); got != 4 {
		t.Errorf("expected offset 4, got %d", got)
	}

	p = orm.NewPagination(1, 2, 10)
	if got := p.Offset(); got != 0 {
		t.Errorf("expected offset 0, got %d", got)
	}
}

func TestPaginationNavigation(t *testing.T) {
	p := orm.NewPagination(2, 2, 6)

	if !p.HasPrev() || !p.HasNext() {
		t.Fatal("middle page should have both neighbours")
	}
	if p.PrevPage() != 1 || p.NextPage() != 3 {
		t.Errorf("expected neighbours 1 and 3, got %d and %d", p.PrevPage(), p.NextPage())
	}

	first := orm.NewPagination(1, 2, 6)
	if first.HasPrev() {
		t.Error("first page should not have a previous page")
	}
	if first.PrevPage() != 1 {
		t.Errorf("PrevPage on the first page should stay at 1, got %d", first.PrevPage())
	}

	last := orm.NewPagination(3, 2, 6)
	if last.HasNext() {
		t.Error("last page should not have a next page")
	}
	if last.NextPage() != 3 {
		t.Errorf("NextPage on the last page should stay at 3, got %d", last.NextPage())
	}
}

func TestPaginationSequence(t *testing.T) {
	p := orm.NewPagination(1, 2, 5)
	seq := p.Sequence()
	if len(seq) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(seq))
	}
	for i, n := range seq {
		if n != i+1 {
			t.Errorf("sequence[%d]: expected %d, got %d", i, i+1, n)
		}
	}
}

func TestPaginationPerPageFloor(t *testing.T) {
	p := orm.NewPagination(1, 0, 5)
	if p.PerPage != 1 {
		t.Errorf("per-page below 1 should be raised to 1, got %d", p.PerPage)
	}
}
