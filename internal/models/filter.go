package models

import (
	"fmt"
	"strings"
)

// ActivityFilter restricts a product listing by IsActive.
type ActivityFilter string

const (
	FilterAll      ActivityFilter = "All"
	FilterActive   ActivityFilter = "Active"
	FilterInactive ActivityFilter = "Inactive"
)

// ParseActivityFilter accepts the filter names case-insensitively.
func ParseActivityFilter(s string) (ActivityFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "inactive":
		return FilterInactive, nil
	}
	return "", fmt.Errorf("unknown activity filter %q", s)
}

// Next cycles All -> Active -> Inactive -> All.
func (f ActivityFilter) Next() ActivityFilter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterInactive
	default:
		return FilterAll
	}
}

// Keep reports whether p passes the filter.
func (f ActivityFilter) Keep(p Product) bool {
	switch f {
	case FilterActive:
		return p.IsActive
	case FilterInactive:
		return !p.IsActive
	default:
		return true
	}
}

// ViewMode selects how a page of products is presented.
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewCard ViewMode = "card"
)

// Toggle flips between list and card.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewCard {
		return ViewList
	}
	return ViewCard
}
