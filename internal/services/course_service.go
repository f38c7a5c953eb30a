package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/nextlearn/catalog/internal/catalog"
	"github.com/nextlearn/catalog/internal/discovery"
	"github.com/nextlearn/catalog/internal/models"
	"go.uber.org/zap"
)

// ErrCourseNotFound is returned when a permalink does not resolve to a course
var ErrCourseNotFound = errors.New("course not found")

type courseService struct {
	engine *discovery.Engine
	byID   map[int]models.Course
	logger *zap.Logger
}

// NewCourseService creates a new course service over a loaded engine
func NewCourseService(engine *discovery.Engine, logger *zap.Logger) *courseService {
	courses := engine.Courses()
	byID := make(map[int]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	return &courseService{
		engine: engine,
		byID:   byID,
		logger: logger,
	}
}

// ListCourses evaluates the listing addressed by query.
//
// The query is read with the same rules as the browser address: unknown labels are kept,
// a malformed page becomes 1. The returned listing carries the canonical query string.
func (s *courseService) ListCourses(ctx context.Context, query url.Values) (*models.CourseListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	session := s.engine.Open(discovery.NewURLAddress(query))
	defer session.Close()

	return session.Listing(), nil
}

// Facets returns the categories and levels of the catalog
func (s *courseService) Facets() models.FacetCatalog {
	return s.engine.Facets()
}

// Courses returns the full catalog in catalog order
func (s *courseService) Courses() []models.Course {
	return s.engine.Courses()
}

// GetBySlug resolves a course permalink.
//
// Only the leading id of slug is significant; callers compare the returned course's
// Slug with the requested one to detect non-canonical links.
func (s *courseService) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := catalog.ParseSlugID(slug)
	if err != nil {
		s.logger.Debug("malformed course slug", zap.String("slug", slug), zap.Error(err))
		return nil, ErrCourseNotFound
	}

	course, ok := s.byID[id]
	if !ok {
		return nil, ErrCourseNotFound
	}

	return &course, nil
}

// Open starts an interactive listing session over store
func (s *courseService) Open(store discovery.AddressStore, opts ...discovery.SessionOption) *discovery.Session {
	return s.engine.Open(store, opts...)
}
