package domain

import "math"

// DefaultPerPage is used when neither caller nor config sets a page size.
const DefaultPerPage = 10

// MaxPerPage caps page sizes accepted from clients.
const MaxPerPage = 100

// PageRequest selects one page of a listing. Zero values fall back to page 1
// and the store's default page size.
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize fills zero or negative fields with defaults.
func (r PageRequest) Normalize(defaultPerPage int) PageRequest {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PerPage <= 0 {
		r.PerPage = defaultPerPage
	}
	return r
}

// Offset is the number of records skipped before this page. It saturates at
// math.MaxInt instead of overflowing for very large page numbers.
func (r PageRequest) Offset() int {
	if r.Page <= 1 || r.PerPage <= 0 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.PerPage {
		return math.MaxInt
	}
	return (r.Page - 1) * r.PerPage
}

type Page[T any] struct {
	Items       []T
	Total       int
	CurrentPage int
	LastPage    int
	PerPage     int
}

// NewPage builds pagination metadata for items drawn from a listing of total records.
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	last := 1
	if req.PerPage > 0 && total > 0 {
		last = (total + req.PerPage - 1) / req.PerPage
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Total:       total,
		CurrentPage: req.Page,
		LastPage:    last,
		PerPage:     req.PerPage,
	}
}
