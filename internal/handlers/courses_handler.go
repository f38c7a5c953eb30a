package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/nextlearn/catalog/internal/models"
	"github.com/nextlearn/catalog/internal/services"
	"go.uber.org/zap"
)

// CoursesService is the interface that wraps methods for course discovery.
type CoursesService interface {
	// Method ListCourses evaluates the course listing addressed by "query".
	//
	// "query" holds the search, categories, levels and page parameters in their address form.
	// Malformed values are normalized rather than rejected, so an error is only returned
	// when the request context is done.
	ListCourses(ctx context.Context, query url.Values) (*models.CourseListing, error)
	// Method Facets returns the sorted categories and levels of the catalog.
	Facets() models.FacetCatalog
	// Method GetBySlug resolves a course permalink of the form "<id>-<title slug>".
	//
	// Only the leading id is significant. If no course has that id, ErrCourseNotFound is returned together with "nil" value.
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	// Method Courses returns the full catalog in catalog order.
	Courses() []models.Course
}

// CoursesHandler handles HTTP requests of the course API
type CoursesHandler struct {
	BaseHandler
	service CoursesService
}

// NewCoursesHandler creates a new courses handler
func NewCoursesHandler(svc CoursesService, logger *zap.Logger) *CoursesHandler {
	return &CoursesHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course API routes
func (h *CoursesHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.ListCourses)
			r.Get("/facets", h.GetFacets)
			r.Get("/{slug}", h.GetCourse)
		})
	})
}

// ListCourses handles GET /api/v1/courses
// @Summary List courses
// @Description Search, filter and paginate the course catalog. Page size is 6.
// @Tags courses
// @Produce json
// @Param search query string false "Case-insensitive text matched against title, description and instructor"
// @Param categories query string false "Comma-separated category labels"
// @Param levels query string false "Comma-separated level labels"
// @Param page query int false "1-based page number, default: 1"
// @Success 200 {object} models.CourseListing
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses [get]
func (h *CoursesHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.ListCourses(r.Context(), r.URL.Query())
	if err != nil {
		h.logger.Error("failed to list courses", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list courses")
		return
	}

	h.respondJSON(w, http.StatusOK, listing)
}

// GetFacets handles GET /api/v1/courses/facets
// @Summary Get course facets
// @Description Get the distinct categories and levels of the catalog, sorted
// @Tags courses
// @Produce json
// @Success 200 {object} models.FacetCatalog
// @Router /api/v1/courses/facets [get]
func (h *CoursesHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Facets())
}

// GetCourse handles GET /api/v1/courses/{slug}
// @Summary Get course by permalink
// @Description Get a single course by its "<id>-<title slug>" permalink
// @Tags courses
// @Produce json
// @Param slug path string true "Course permalink"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{slug} [get]
func (h *CoursesHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	course, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.Error("failed to get course", zap.String("slug", slug), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}
