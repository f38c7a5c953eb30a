// Package validator collects field-level validation errors
package validator

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Validator accumulates the first error message for each key
type Validator struct {
	Errors map[string]string
}

// New creates an empty validator
func New() *Validator {
	return &Validator{
		Errors: make(map[string]string),
	}
}

// Valid reports whether no errors were recorded
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for key unless key already has an error
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// CheckField records message for key when ok is false
func (v *Validator) CheckField(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err returns the recorded errors as one error with keys in sorted order, or nil
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}

	keys := make([]string, 0, len(v.Errors))
	for k := range v.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Errors[k]))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}

// PermittedValue reports whether value is one of permittedValues
func PermittedValue[T comparable](value T, permittedValues ...T) bool {
	for i := range permittedValues {
		if value == permittedValues[i] {
			return true
		}
	}

	return false
}

// NotBlank returns true if value is not an empty or whitespace-only string
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxChars returns true if value contains no more than n characters
func MaxChars(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Unique returns true if all values in a slice are unique
func Unique[T comparable](values []T) bool {
	uniqueValues := make(map[T]bool)

	for _, v := range values {
		uniqueValues[v] = true
	}

	return len(values) == len(uniqueValues)
}
