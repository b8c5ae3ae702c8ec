package orm

import (
	"time"

	"github.com/shashiranjanraj/vanik/pkg/metrics"
)

// Pagination describes one page of a result set. Page is always clamped
// into [1, Pages]: out-of-range requests land on the nearest valid page
// instead of erroring, and an empty result set still has one (empty) page.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// NewPagination clamps page against the total row count.
func NewPagination(page, perPage int, total int64) Pagination {
	if perPage < 1 {
		perPage = 1
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	return Pagination{Page: page, PerPage: perPage, Total: total, Pages: pages}
}

// Offset is the row offset of the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.Pages }

func (p Pagination) PrevPage() int {
	if p.HasPrev() {
		return p.Page - 1
	}
	return p.Page
}

func (p Pagination) NextPage() int {
	if p.HasNext() {
		return p.Page + 1
	}
	return p.Page
}

// Sequence lists every page number, for rendering a pager.
func (p Pagination) Sequence() []int {
	seq := make([]int, p.Pages)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

// GetWithPagination counts the chained query, clamps page, then fetches
// that page into dest. perPage rows at most are returned.
//
// Aggregated chains (GROUP BY) should count separately and page with
// Offset/Limit themselves, since a row count over groups is driver
// dependent.
func (q *Query) GetWithPagination(dest interface{}, page, perPage int) (Pagination, error) {
	total, err := q.Count()
	if err != nil {
		return Pagination{}, err
	}

	p := NewPagination(page, perPage, total)

	defer metrics.ObserveDBQuery("select", time.Now())
	err = q.session().Offset(p.Offset()).Limit(p.PerPage).Find(dest).Error
	return p, err
}
