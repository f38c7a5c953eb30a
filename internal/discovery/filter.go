package discovery

import (
	"slices"
	"strings"

	"github.com/nextlearn/catalog/internal/models"
)

// Matches reports whether the course passes every active filter of state.
//
// An empty selection or an empty search disables that axis. Search is a
// case-insensitive substring match against title, description and instructor.
func Matches(course models.Course, state models.FilterState) bool {
	return matches(course, strings.ToLower(state.Search), state)
}

// Filter returns the courses matching state, preserving catalog order
func Filter(courses []models.Course, state models.FilterState) []models.Course {
	query := strings.ToLower(state.Search)
	matched := make([]models.Course, 0, len(courses))

	for _, c := range courses {
		if matches(c, query, state) {
			matched = append(matched, c)
		}
	}

	return matched
}

// query is state.Search already lower-cased
func matches(course models.Course, query string, state models.FilterState) bool {
	return matchesSelection(course.Category, state.Categories) &&
		matchesSelection(course.Level, state.Levels) &&
		matchesSearch(course, query)
}

func matchesSelection(value string, selected []string) bool {
	return len(selected) == 0 || slices.Contains(selected, value)
}

func matchesSearch(course models.Course, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(course.Title), query) ||
		strings.Contains(strings.ToLower(course.Description), query) ||
		strings.Contains(strings.ToLower(course.Instructor), query)
}
