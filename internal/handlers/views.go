package handlers

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/nextlearn/catalog/internal/discovery"
	"github.com/nextlearn/catalog/internal/models"
)

const (
	siteName        = "NextLearn"
	siteDescription = "Discover top courses, learn from experts, and join a thriving community."
	coursesPath     = "/courses"
)

type pageMeta struct {
	Title       string
	Description string
	Canonical   string
	Year        int
}

func newPageMeta(baseURL, title, path string) pageMeta {
	full := siteName + " - Modern Learning Platform"
	if title != "" {
		full = title + " | " + siteName
	}
	return pageMeta{
		Title:       full,
		Description: siteDescription,
		Canonical:   baseURL + path,
		Year:        time.Now().Year(),
	}
}

type homeView struct {
	Meta     pageMeta
	Features []models.Feature
	Courses  []models.Course
}

type facetOption struct {
	Label   string
	Checked bool
	Href    string
}

type pageLink struct {
	Label    string
	Href     string
	Current  bool
	Ellipsis bool
}

type coursesView struct {
	Meta       pageMeta
	Listing    *models.CourseListing
	Categories []facetOption
	Levels     []facetOption
	Pages      []pageLink
	PrevHref   string
	NextHref   string
	ClearHref  string
	Summary    string

	EmptyTitle   string
	EmptyMessage string
	EmptyHref    string

	// Hidden form fields preserving the selections while the search text changes
	CategoriesValue string
	LevelsValue     string
	DebounceMillis  int64
}

type courseView struct {
	Meta         pageMeta
	Course       models.Course
	Prerequisite string
	BackHref     string
}

type notFoundView struct {
	Meta    pageMeta
	Heading string
	Message string
}

// coursesHref is the listing address of state
func coursesHref(state models.FilterState) string {
	if q := discovery.EncodeAddress(state); q != "" {
		return coursesPath + "?" + q
	}
	return coursesPath
}

func courseHref(c models.Course) string {
	return coursesPath + "/" + c.Slug
}

func newCoursesView(meta pageMeta, listing *models.CourseListing, debounce time.Duration) coursesView {
	state := listing.Filters

	v := coursesView{
		Meta:            meta,
		Listing:         listing,
		Categories:      facetOptions(listing.Facets.Categories, state.Categories, state.WithCategoryToggled),
		Levels:          facetOptions(listing.Facets.Levels, state.Levels, state.WithLevelToggled),
		CategoriesValue: strings.Join(state.Categories, ","),
		LevelsValue:     strings.Join(state.Levels, ","),
		DebounceMillis:  debounce.Milliseconds(),
	}

	if listing.HasActiveFilters {
		v.ClearHref = coursesHref(state.Cleared())
	}

	if listing.TotalPages > 1 {
		for _, item := range listing.PageRange {
			if item.Ellipsis {
				v.Pages = append(v.Pages, pageLink{Label: models.Ellipsis, Ellipsis: true})
				continue
			}
			v.Pages = append(v.Pages, pageLink{
				Label:   strconv.Itoa(item.Page),
				Href:    coursesHref(state.WithPage(item.Page)),
				Current: item.Page == listing.Page,
			})
		}
		if listing.Page > 1 {
			v.PrevHref = coursesHref(state.WithPage(listing.Page - 1))
		}
		if listing.Page < listing.TotalPages {
			v.NextHref = coursesHref(state.WithPage(listing.Page + 1))
		}
	}

	switch {
	case len(listing.Courses) > 0:
		first := (listing.Page-1)*discovery.PageSize + 1
		last := first + len(listing.Courses) - 1
		v.Summary = fmt.Sprintf("Showing %d-%d of %d courses", first, last, listing.TotalMatched)
	case listing.TotalMatched > 0:
		v.EmptyTitle = "No courses on this page"
		v.EmptyMessage = fmt.Sprintf("There are only %d pages of results.", listing.TotalPages)
		if listing.TotalPages == 1 {
			v.EmptyMessage = "There is only 1 page of results."
		}
		v.EmptyHref = coursesHref(state.WithPage(1))
	case state.Search == "" && len(state.Categories) == 0 && len(state.Levels) == 0:
		v.EmptyTitle = "No courses available right now"
		v.EmptyMessage = "Please check back later for new courses."
	case state.Search == "":
		v.EmptyTitle = "No courses found"
		v.EmptyMessage = "We couldn't find any courses matching the selected filters."
	default:
		v.EmptyTitle = "No courses found"
		v.EmptyMessage = fmt.Sprintf("We couldn't find any courses matching %q", state.Search)
	}

	return v
}

// facetOptions lists the catalog labels followed by selected labels the catalog does not know,
// so that every active selection can be toggled off.
func facetOptions(labels, selected []string, toggled func(string) models.FilterState) []facetOption {
	options := make([]facetOption, 0, len(labels))
	for _, label := range labels {
		options = append(options, facetOption{
			Label:   label,
			Checked: slices.Contains(selected, label),
			Href:    coursesHref(toggled(label)),
		})
	}
	for _, label := range selected {
		if slices.Contains(labels, label) {
			continue
		}
		options = append(options, facetOption{Label: label, Checked: true, Href: coursesHref(toggled(label))})
	}
	return options
}

func newCourseView(meta pageMeta, course models.Course) courseView {
	v := courseView{
		Meta:     meta,
		Course:   course,
		BackHref: coursesPath,
	}

	switch course.Level {
	case "Beginner":
		v.Prerequisite = "those new to the field."
	case "Intermediate":
		v.Prerequisite = "individuals with basic prior knowledge."
	default:
		v.Prerequisite = "experienced professionals looking to refine their skills."
	}

	return v
}
