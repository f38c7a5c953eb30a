package discovery

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/nextlearn/catalog/internal/models"
)

// Address query-string keys
const (
	KeySearch     = "search"
	KeyCategories = "categories"
	KeyLevels     = "levels"
	KeyPage       = "page"
)

const listSeparator = ","

// AddressStore is the interface that wraps access to the visible address (query string).
type AddressStore interface {
	// Method Get returns the raw value of key and whether the key is present.
	Get(key string) (string, bool)
	// Method Replace swaps the whole query string in place, without creating a new
	// navigation history entry. "query" has no leading "?".
	Replace(query string)
}

// ParseAddress seeds a FilterState from the store.
//
// Missing keys take their defaults. Selection lists are comma separated; empty items
// are dropped and duplicates collapse. A page that is not a positive integer becomes 1.
// Labels unknown to the catalog are kept: they simply match nothing.
func ParseAddress(store AddressStore) models.FilterState {
	state := models.NewFilterState()

	if search, ok := store.Get(KeySearch); ok {
		state.Search = search
	}
	if raw, ok := store.Get(KeyCategories); ok {
		state.Categories = splitList(raw)
	}
	if raw, ok := store.Get(KeyLevels); ok {
		state.Levels = splitList(raw)
	}
	if raw, ok := store.Get(KeyPage); ok {
		if page, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && page > 0 {
			state.Page = page
		}
	}

	return state
}

// EncodeAddress serializes state into a query string (without "?").
//
// Only non-default values are written, in the order search, categories, levels, page.
// The default state encodes to "".
func EncodeAddress(state models.FilterState) string {
	parts := make([]string, 0, 4)

	if state.Search != "" {
		parts = append(parts, KeySearch+"="+url.QueryEscape(state.Search))
	}
	if len(state.Categories) > 0 {
		parts = append(parts, KeyCategories+"="+joinList(state.Categories))
	}
	if len(state.Levels) > 0 {
		parts = append(parts, KeyLevels+"="+joinList(state.Levels))
	}
	if state.Page > 1 {
		parts = append(parts, KeyPage+"="+strconv.Itoa(state.Page))
	}

	return strings.Join(parts, "&")
}

func splitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, listSeparator) {
		if item == "" || slices.Contains(items, item) {
			continue
		}
		items = append(items, item)
	}
	return items
}

func joinList(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = url.QueryEscape(item)
	}
	return strings.Join(escaped, listSeparator)
}

// URLAddress is an AddressStore over parsed query values.
// Replace records the new query; it is safe for concurrent use.
type URLAddress struct {
	mu       sync.Mutex
	values   url.Values
	query    string
	replaced int
}

// NewURLAddress creates a store seeded with values
func NewURLAddress(values url.Values) *URLAddress {
	if values == nil {
		values = url.Values{}
	}
	return &URLAddress{
		values: values,
		query:  values.Encode(),
	}
}

// Get returns the first value of key
func (a *URLAddress) Get(key string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.values.Has(key) {
		return "", false
	}
	return a.values.Get(key), true
}

// Replace swaps the stored query
func (a *URLAddress) Replace(query string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	values, err := url.ParseQuery(query)
	if err != nil {
		values = url.Values{}
	}
	a.values = values
	a.query = query
	a.replaced++
}

// Query returns the current query string
func (a *URLAddress) Query() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.query
}

// Replacements returns how many times Replace was called
func (a *URLAddress) Replacements() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.replaced
}
