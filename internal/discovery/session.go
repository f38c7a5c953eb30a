package discovery

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/nextlearn/catalog/internal/models"
	"go.uber.org/zap"
)

// DefaultDebounce is the default delay between the last keystroke and the search commit
const DefaultDebounce = 300 * time.Millisecond

// Phase is the lifecycle state of a Session
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseSeeded
	PhaseActive
	PhaseUnmounted
)

func (p Phase) String() string {
	switch p {
	case PhaseSeeded:
		return "seeded"
	case PhaseActive:
		return "active"
	case PhaseUnmounted:
		return "unmounted"
	default:
		return "uninitialized"
	}
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithDebounce sets the search debounce window
func WithDebounce(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.debounceWindow = d
		}
	}
}

// WithOnChange registers a callback invoked after every applied transition.
// The callback runs with the session unlocked.
func WithOnChange(fn func(models.FilterState, models.PageResult)) SessionOption {
	return func(s *Session) {
		s.onChange = fn
	}
}

// Session is one view of the course listing: the current FilterState, its
// PageResult, and the address store kept in sync with them.
//
// Every mutator produces exactly one new state, recomputes the result and
// replaces the address once. Mutations after Close are ignored.
type Session struct {
	engine *Engine
	store  AddressStore
	logger *zap.Logger

	debounceWindow time.Duration
	debounced      func(func())
	onChange       func(models.FilterState, models.PageResult)

	mu     sync.Mutex
	phase  Phase
	state  models.FilterState
	result models.PageResult
}

// Open starts a session seeded from the address store.
// Seeding does not rewrite the address.
func (e *Engine) Open(store AddressStore, opts ...SessionOption) *Session {
	s := &Session{
		engine:         e,
		store:          store,
		logger:         e.logger,
		debounceWindow: DefaultDebounce,
		phase:          PhaseUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.debounced = debounce.New(s.debounceWindow)

	s.state = ParseAddress(store)
	s.result = e.Evaluate(s.state)
	s.phase = PhaseSeeded

	return s
}

// State returns the current filter state
func (s *Session) State() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Result returns the current page result
func (s *Session) Result() models.PageResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Listing returns the current state packed for presentation
func (s *Session) Listing() *models.CourseListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.listing(s.state, s.result)
}

// Facets returns the facets of the underlying catalog
func (s *Session) Facets() models.FacetCatalog {
	return s.engine.Facets()
}

// Phase returns the lifecycle phase
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// SetSearch replaces the search text and returns to the first page
func (s *Session) SetSearch(text string) {
	s.apply("search", func(f models.FilterState) models.FilterState {
		return f.WithSearch(text)
	})
}

// TypeSearch is SetSearch delayed until typing pauses for the debounce window.
// A newer call replaces a pending one.
func (s *Session) TypeSearch(text string) {
	s.debounced(func() {
		s.SetSearch(text)
	})
}

// ToggleCategory flips the selection of a category and returns to the first page
func (s *Session) ToggleCategory(label string) {
	s.apply("toggle_category", func(f models.FilterState) models.FilterState {
		return f.WithCategoryToggled(label)
	})
}

// ToggleLevel flips the selection of a level and returns to the first page
func (s *Session) ToggleLevel(label string) {
	s.apply("toggle_level", func(f models.FilterState) models.FilterState {
		return f.WithLevelToggled(label)
	})
}

// GoToPage moves to page n, leaving the filters untouched
func (s *Session) GoToPage(n int) {
	s.apply("go_to_page", func(f models.FilterState) models.FilterState {
		return f.WithPage(n)
	})
}

// ClearAll resets search, selections and page in a single transition
func (s *Session) ClearAll() {
	s.apply("clear_all", func(f models.FilterState) models.FilterState {
		return f.Cleared()
	})
}

// Close unmounts the session. A pending debounced search is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseUnmounted
}

func (s *Session) apply(action string, transition func(models.FilterState) models.FilterState) {
	s.mu.Lock()
	if s.phase == PhaseUnmounted {
		s.mu.Unlock()
		s.logger.Debug("ignoring transition on unmounted session", zap.String("action", action))
		return
	}

	next := transition(s.state)
	result := s.engine.Evaluate(next)
	query := EncodeAddress(next)

	s.state = next
	s.result = result
	s.phase = PhaseActive
	s.store.Replace(query)
	onChange := s.onChange
	s.mu.Unlock()

	s.logger.Debug("listing state changed",
		zap.String("action", action),
		zap.String("query", query),
		zap.Int("matched", len(result.Matched)),
		zap.Int("page", result.Page),
	)

	if onChange != nil {
		onChange(next.Clone(), result)
	}
}
