package discovery

import (
	"github.com/nextlearn/catalog/internal/models"
	"go.uber.org/zap"
)

// Engine owns the immutable catalog and the facets derived from it.
// It is safe for concurrent use.
type Engine struct {
	courses []models.Course
	facets  models.FacetCatalog
	logger  *zap.Logger
}

// NewEngine creates an engine over a copy of courses and derives its facets once
func NewEngine(courses []models.Course, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	owned := append([]models.Course{}, courses...)
	facets := DeriveFacets(owned)

	logger.Debug("discovery engine initialized",
		zap.Int("courses", len(owned)),
		zap.Strings("categories", facets.Categories),
		zap.Strings("levels", facets.Levels),
	)

	return &Engine{
		courses: owned,
		facets:  facets,
		logger:  logger,
	}
}

// Courses returns a copy of the catalog
func (e *Engine) Courses() []models.Course {
	return append([]models.Course{}, e.courses...)
}

// Facets returns a copy of the derived facets
func (e *Engine) Facets() models.FacetCatalog {
	return models.FacetCatalog{
		Categories: append([]string{}, e.facets.Categories...),
		Levels:     append([]string{}, e.facets.Levels...),
	}
}

// Evaluate applies state to the catalog: filter, then paginate
func (e *Engine) Evaluate(state models.FilterState) models.PageResult {
	page := max(state.Page, 1)
	matched := Filter(e.courses, state)
	totalPages := TotalPages(len(matched))

	return models.PageResult{
		Matched:    matched,
		PageItems:  Paginate(matched, page),
		TotalPages: totalPages,
		Page:       page,
		Range:      PageRange(totalPages, page),
	}
}

// Listing evaluates state and packs the result for presentation
func (e *Engine) Listing(state models.FilterState) *models.CourseListing {
	return e.listing(state, e.Evaluate(state))
}

func (e *Engine) listing(state models.FilterState, result models.PageResult) *models.CourseListing {
	items := make([]models.CourseListItem, 0, len(result.PageItems))
	for _, c := range result.PageItems {
		items = append(items, c.ListItem())
	}

	return &models.CourseListing{
		Filters:          state.Clone(),
		Facets:           e.Facets(),
		Courses:          items,
		TotalMatched:     len(result.Matched),
		TotalPages:       result.TotalPages,
		Page:             result.Page,
		PageRange:        result.Range,
		HasActiveFilters: state.HasActiveFilters(),
		Query:            EncodeAddress(state),
	}
}
