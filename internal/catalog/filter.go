// Package catalog derives the visible product listing from a store snapshot.
// Everything here is pure: inputs are never mutated and results are fresh slices.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"katalog/internal/models"
)

// Criteria selects which products are visible.
type Criteria struct {
	Search   string
	Activity models.ActivityFilter
}

// Filter applies the search filter, then the activity filter, then sorts
// newest first. Products created at the same instant are ordered by
// descending ID; store IDs increase with creation, so later products still
// come first and repeated calls agree.
func Filter(products []models.Product, c Criteria) []models.Product {
	term := strings.ToLower(c.Search)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if !c.Activity.Keep(p) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, compareNewestFirst)
	return out
}

func compareNewestFirst(a, b models.Product) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}
