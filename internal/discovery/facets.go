// Package discovery implements course search, facet filtering, pagination and
// the address (query string) encoding of the listing state.
//
// Everything in this package is synchronous and deterministic: the same catalog and
// the same FilterState always produce the same PageResult.
package discovery

import (
	"slices"

	"github.com/nextlearn/catalog/internal/models"
)

// DeriveFacets returns the sorted distinct categories and levels of the catalog
func DeriveFacets(courses []models.Course) models.FacetCatalog {
	categories := make([]string, 0)
	levels := make([]string, 0)

	for _, c := range courses {
		categories = append(categories, c.Category)
		levels = append(levels, c.Level)
	}

	slices.Sort(categories)
	slices.Sort(levels)

	return models.FacetCatalog{
		Categories: slices.Compact(categories),
		Levels:     slices.Compact(levels),
	}
}
