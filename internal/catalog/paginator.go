package catalog

import "slices"

// PageSizes are the only page sizes a listing may use.
var PageSizes = []int{5, 6, 7, 8, 9, 10}

// DefaultPageSize is used until a page size is chosen.
const DefaultPageSize = 5

// ValidPageSize reports whether k is one of PageSizes.
func ValidPageSize(k int) bool {
	return slices.Contains(PageSizes, k)
}

// TotalPages is ceil(n/k), never less than 1.
func TotalPages(n, k int) int {
	if k <= 0 || n <= 0 {
		return 1
	}
	return (n + k - 1) / k
}

// Bounds returns the half-open range [start, end) of page p (1-indexed)
// intersected with [0, n). It does not clamp p: a page outside the listing
// yields an empty range.
func Bounds(n, p, k int) (start, end int) {
	if n <= 0 || p < 1 || k <= 0 {
		return 0, 0
	}
	start = (p - 1) * k
	end = p * k
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	return start, end
}

// Page holds one slice of a listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate cuts page p of size k out of items.
func Paginate[T any](items []T, p, k int) Page[T] {
	start, end := Bounds(len(items), p, k)
	page := make([]T, end-start)
	copy(page, items[start:end])
	return Page[T]{
		Items:      page,
		Page:       p,
		PageSize:   k,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), k),
	}
}
