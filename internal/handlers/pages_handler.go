package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nextlearn/catalog/internal/models"
	"github.com/nextlearn/catalog/internal/services"
	"go.uber.org/zap"
)

const homeCourseCount = 3

// PagesHandler renders the HTML site
type PagesHandler struct {
	BaseHandler
	service   CoursesService
	renderer  *renderer
	features  []models.Feature
	baseURL   string
	debounce  time.Duration
	startedAt time.Time
}

// NewPagesHandler creates a new pages handler.
//
// "baseURL" is the public origin used for canonical links and the sitemap.
// "debounce" is the delay the search box waits for typing to pause before reloading the listing.
func NewPagesHandler(svc CoursesService, features []models.Feature, baseURL string, debounce time.Duration, logger *zap.Logger) (*PagesHandler, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	return &PagesHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		renderer:    r,
		features:    features,
		baseURL:     baseURL,
		debounce:    debounce,
		startedAt:   time.Now().UTC(),
	}, nil
}

// RegisterRoutes registers all page routes
func (h *PagesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/courses", h.Courses)
	r.Get("/courses/{slug}", h.Course)
	r.Get("/terms", h.Terms)
	r.Get("/privacy", h.Privacy)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)
}

// Home handles GET /
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	courses := h.service.Courses()
	if len(courses) > homeCourseCount {
		courses = courses[:homeCourseCount]
	}

	h.render(w, http.StatusOK, pageHome, homeView{
		Meta:     newPageMeta(h.baseURL, "", "/"),
		Features: h.features,
		Courses:  courses,
	})
}

// Courses handles GET /courses.
//
// The address is the source of truth for the listing state: a query that is not
// the canonical encoding of the state it describes is redirected to the canonical one.
func (h *PagesHandler) Courses(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.ListCourses(r.Context(), r.URL.Query())
	if err != nil {
		h.logger.Error("failed to list courses", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if r.URL.RawQuery != listing.Query {
		http.Redirect(w, r, coursesHref(listing.Filters), http.StatusFound)
		return
	}

	meta := newPageMeta(h.baseURL, "Courses", coursesHref(listing.Filters))
	h.render(w, http.StatusOK, pageCourses, newCoursesView(meta, listing, h.debounce))
}

// Course handles GET /courses/{slug}
func (h *PagesHandler) Course(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	course, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			h.render(w, http.StatusNotFound, pageNotFound, notFoundView{
				Meta:    newPageMeta(h.baseURL, "Course Not Found", r.URL.Path),
				Heading: "Course Not Found",
				Message: "The course you're looking for doesn't exist or has been removed.",
			})
			return
		}
		h.logger.Error("failed to get course", zap.String("slug", slug), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if course.Slug != slug {
		http.Redirect(w, r, courseHref(*course), http.StatusMovedPermanently)
		return
	}

	meta := newPageMeta(h.baseURL, course.Title, courseHref(*course))
	meta.Description = course.Description
	h.render(w, http.StatusOK, pageCourse, newCourseView(meta, *course))
}

// Terms handles GET /terms
func (h *PagesHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageLegal, legalView{
		Meta:     newPageMeta(h.baseURL, "Terms of Service", "/terms"),
		Heading:  "Terms of Service",
		Sections: termsSections,
	})
}

// Privacy handles GET /privacy
func (h *PagesHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageLegal, legalView{
		Meta:     newPageMeta(h.baseURL, "Privacy Policy", "/privacy"),
		Heading:  "Privacy Policy",
		Sections: privacySections,
	})
}

// NotFound renders the 404 page for unknown paths
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, pageNotFound, notFoundView{
		Meta:    newPageMeta(h.baseURL, "Page Not Found", r.URL.Path),
		Heading: "404",
		Message: "Oops! The page you're looking for doesn't exist.",
	})
}
