// Package catalog provides the course catalog and its loading rules
package catalog

import (
	"context"
	"fmt"

	"github.com/nextlearn/catalog/internal/models"
	"github.com/nextlearn/catalog/internal/validator"
)

// Provider is the interface that wraps the method for retrieving the full course list.
type Provider interface {
	// Method GetAll retrieves every course of the catalog in catalog order.
	//
	// The returned slice must not be modified by the provider afterwards.
	// If the data source fails, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Course, error)
}

// Load retrieves the catalog from provider, validates it and fills in permalinks.
//
// Every course must have a positive id that is unique across the catalog and a title.
// The returned slice is owned by the caller.
func Load(ctx context.Context, provider Provider) ([]models.Course, error) {
	courses, err := provider.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := Validate(courses); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	loaded := make([]models.Course, len(courses))
	for i, course := range courses {
		course.Slug = Permalink(course)
		loaded[i] = course
	}

	return loaded, nil
}

// Validate checks the catalog invariants
func Validate(courses []models.Course) error {
	v := validator.New()
	seen := make(map[int]int, len(courses))

	for i, course := range courses {
		key := fmt.Sprintf("courses[%d]", i)
		v.CheckField(course.ID > 0, key+".id", "must be a positive integer")
		v.CheckField(validator.NotBlank(course.Title), key+".title", "must not be blank")
		v.CheckField(validator.NotBlank(course.Category), key+".category", "must not be blank")
		v.CheckField(validator.NotBlank(course.Level), key+".level", "must not be blank")

		if first, ok := seen[course.ID]; ok {
			v.AddError(key+".id", fmt.Sprintf("duplicates id of courses[%d]", first))
			continue
		}
		seen[course.ID] = i
	}

	return v.Err()
}
