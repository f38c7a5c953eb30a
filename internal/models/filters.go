package models

import (
	"encoding/json"
	"slices"
)

// FilterState holds every user-controlled input that determines the visible course list.
//
// FilterState is a value: each transition returns a new FilterState and never shares
// the selection slices of the receiver.
type FilterState struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
	Levels     []string `json:"levels"`
	Page       int      `json:"page"`
}

// NewFilterState returns the default state: no search, no selections, first page
func NewFilterState() FilterState {
	return FilterState{
		Categories: []string{},
		Levels:     []string{},
		Page:       1,
	}
}

// WithSearch replaces the search text and resets the page
func (f FilterState) WithSearch(text string) FilterState {
	next := f.Clone()
	next.Search = text
	next.Page = 1
	return next
}

// WithCategoryToggled adds the category if absent, removes it otherwise, and resets the page
func (f FilterState) WithCategoryToggled(label string) FilterState {
	next := f.Clone()
	next.Categories = toggle(next.Categories, label)
	next.Page = 1
	return next
}

// WithLevelToggled adds the level if absent, removes it otherwise, and resets the page
func (f FilterState) WithLevelToggled(label string) FilterState {
	next := f.Clone()
	next.Levels = toggle(next.Levels, label)
	next.Page = 1
	return next
}

// WithPage moves to the given page without touching the filters.
// Pages lower than 1 are normalized to 1.
func (f FilterState) WithPage(page int) FilterState {
	next := f.Clone()
	if page < 1 {
		page = 1
	}
	next.Page = page
	return next
}

// Cleared returns the default state in one step
func (f FilterState) Cleared() FilterState {
	return NewFilterState()
}

// HasActiveFilters reports whether search text or any facet selection is set
func (f FilterState) HasActiveFilters() bool {
	return f.Search != "" || len(f.Categories) > 0 || len(f.Levels) > 0
}

// HasCategory reports whether the category is selected
func (f FilterState) HasCategory(label string) bool {
	return slices.Contains(f.Categories, label)
}

// HasLevel reports whether the level is selected
func (f FilterState) HasLevel(label string) bool {
	return slices.Contains(f.Levels, label)
}

// Equal compares two states, treating nil and empty selections as the same
func (f FilterState) Equal(other FilterState) bool {
	return f.Search == other.Search &&
		f.Page == other.Page &&
		slices.Equal(f.Categories, other.Categories) &&
		slices.Equal(f.Levels, other.Levels)
}

// Clone returns a copy that shares no slices with f
func (f FilterState) Clone() FilterState {
	return FilterState{
		Search:     f.Search,
		Categories: append([]string{}, f.Categories...),
		Levels:     append([]string{}, f.Levels...),
		Page:       f.Page,
	}
}

func toggle(values []string, label string) []string {
	if i := slices.Index(values, label); i >= 0 {
		return slices.Delete(values, i, i+1)
	}
	return append(values, label)
}

// FacetCatalog holds the distinct filterable values derived from the catalog
type FacetCatalog struct {
	Categories []string `json:"categories"`
	Levels     []string `json:"levels"`
}

// PageRangeItem is one entry of the pagination controls: a page number or an ellipsis
type PageRangeItem struct {
	Page     int
	Ellipsis bool
}

// Ellipsis marks a collapsed run of pages
const Ellipsis = "..."

// MarshalJSON encodes page numbers as numbers and ellipses as "..."
func (p PageRangeItem) MarshalJSON() ([]byte, error) {
	if p.Ellipsis {
		return json.Marshal(Ellipsis)
	}
	return json.Marshal(p.Page)
}

// PageResult is the outcome of applying a FilterState to the catalog
type PageResult struct {
	Matched    []Course        `json:"-"`
	PageItems  []Course        `json:"pageItems"`
	TotalPages int             `json:"totalPages"`
	Page       int             `json:"page"`
	Range      []PageRangeItem `json:"range"`
}

// CourseListing is the response of the course listing endpoint
type CourseListing struct {
	Filters          FilterState      `json:"filters"`
	Facets           FacetCatalog     `json:"facets"`
	Courses          []CourseListItem `json:"courses"`
	TotalMatched     int              `json:"totalMatched"`
	TotalPages       int              `json:"totalPages"`
	Page             int              `json:"page"`
	PageRange        []PageRangeItem  `json:"pageRange"`
	HasActiveFilters bool             `json:"hasActiveFilters"`
	Query            string           `json:"query"`
}
