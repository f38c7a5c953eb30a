package discovery

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/nextlearn/catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCourses returns a catalog of 7 courses, 2 of them in "Design"
func testCourses() []models.Course {
	return []models.Course{
		{ID: 1, Title: "React Basics", Description: "Components and hooks", Instructor: "Jane Doe", Category: "Web Development", Level: "Beginner"},
		{ID: 2, Title: "UI Fundamentals", Description: "Layout and color", Instructor: "Alex Kim", Category: "Design", Level: "Beginner"},
		{ID: 3, Title: "Data Science Bootcamp", Description: "Pandas and plots", Instructor: "Priya Natarajan", Category: "Data Science", Level: "Intermediate"},
		{ID: 4, Title: "Marketing 101", Description: "Funnels and campaigns", Instructor: "Marco Rossi", Category: "Marketing", Level: "Beginner"},
		{ID: 5, Title: "Design Systems", Description: "Scaling a component library", Instructor: "Alex Kim", Category: "Design", Level: "Advanced"},
		{ID: 6, Title: "Go for Backends", Description: "Services with React frontends", Instructor: "Tom Becker", Category: "Web Development", Level: "Intermediate"},
		{ID: 7, Title: "Startup Finance", Description: "Runway and funding", Instructor: "Lena Hoffmann", Category: "Business", Level: "Beginner"},
	}
}

// numberedCourses returns n courses with ids 1..n in a single category and level
func numberedCourses(n int) []models.Course {
	courses := make([]models.Course, 0, n)
	for i := 1; i <= n; i++ {
		courses = append(courses, models.Course{ID: i, Title: fmt.Sprintf("Course %d", i), Category: "General", Level: "Beginner"})
	}
	return courses
}

func ids(courses []models.Course) []int {
	out := make([]int, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestDeriveFacets(t *testing.T) {
	tests := []struct {
		name               string
		courses            []models.Course
		expectedCategories []string
		expectedLevels     []string
	}{
		{
			name:               "deduplicated and sorted",
			courses:            testCourses(),
			expectedCategories: []string{"Business", "Data Science", "Design", "Marketing", "Web Development"},
			expectedLevels:     []string{"Advanced", "Beginner", "Intermediate"},
		},
		{
			name:               "empty catalog",
			courses:            nil,
			expectedCategories: []string{},
			expectedLevels:     []string{},
		},
		{
			name: "raw lexicographic order",
			courses: []models.Course{
				{ID: 1, Category: "design", Level: "Expert"},
				{ID: 2, Category: "Design", Level: "expert"},
				{ID: 3, Category: "design", Level: "Expert"},
			},
			expectedCategories: []string{"Design", "design"},
			expectedLevels:     []string{"Expert", "expert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facets := DeriveFacets(tt.courses)
			assert.Equal(t, tt.expectedCategories, facets.Categories)
			assert.Equal(t, tt.expectedLevels, facets.Levels)
		})
	}
}

func TestMatches(t *testing.T) {
	course := models.Course{
		Title:       "React Basics",
		Description: "Build interfaces",
		Instructor:  "Jane Doe",
		Category:    "Web Development",
		Level:       "Beginner",
	}

	tests := []struct {
		name     string
		state    models.FilterState
		expected bool
	}{
		{name: "default state matches everything", state: models.NewFilterState(), expected: true},
		{name: "search is case-insensitive", state: models.FilterState{Search: "REACT"}, expected: true},
		{name: "search matches instructor", state: models.FilterState{Search: "jane"}, expected: true},
		{name: "search matches description", state: models.FilterState{Search: "interf"}, expected: true},
		{name: "search is unanchored", state: models.FilterState{Search: "act bas"}, expected: true},
		{name: "search without match", state: models.FilterState{Search: "python"}, expected: false},
		{name: "selected category", state: models.FilterState{Categories: []string{"Design", "Web Development"}}, expected: true},
		{name: "other category", state: models.FilterState{Categories: []string{"Design"}}, expected: false},
		{name: "selected level", state: models.FilterState{Levels: []string{"Beginner"}}, expected: true},
		{name: "other level", state: models.FilterState{Levels: []string{"Advanced"}}, expected: false},
		{
			name:     "all axes match",
			state:    models.FilterState{Search: "doe", Categories: []string{"Web Development"}, Levels: []string{"Beginner"}},
			expected: true,
		},
		{
			name:     "one failing axis excludes",
			state:    models.FilterState{Search: "doe", Categories: []string{"Web Development"}, Levels: []string{"Advanced"}},
			expected: false,
		},
		{name: "unknown label matches nothing", state: models.FilterState{Categories: []string{"Cooking"}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(course, tt.state))
		})
	}
}

func TestFilter_IsConjunctionOfAxes(t *testing.T) {
	courses := testCourses()
	states := []models.FilterState{
		{Search: "react"},
		{Categories: []string{"Design"}},
		{Levels: []string{"Beginner"}},
		{Search: "alex", Levels: []string{"Advanced"}},
		{Search: "react", Categories: []string{"Web Development"}, Levels: []string{"Intermediate"}},
	}

	for _, state := range states {
		searchOnly := Filter(courses, models.FilterState{Search: state.Search})
		categoryOnly := Filter(courses, models.FilterState{Categories: state.Categories})
		levelOnly := Filter(courses, models.FilterState{Levels: state.Levels})

		for _, c := range courses {
			expected := containsID(searchOnly, c.ID) && containsID(categoryOnly, c.ID) && containsID(levelOnly, c.ID)
			assert.Equal(t, expected, Matches(c, state), "course %d with %+v", c.ID, state)
		}
	}
}

func containsID(courses []models.Course, id int) bool {
	for _, c := range courses {
		if c.ID == id {
			return true
		}
	}
	return false
}

func TestFilter_PreservesCatalogOrder(t *testing.T) {
	matched := Filter(testCourses(), models.FilterState{Search: "react"})
	assert.Equal(t, []int{1, 6}, ids(matched))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(6))
	assert.Equal(t, 2, TotalPages(7))
	assert.Equal(t, 4, TotalPages(24))
}

func TestPaginate(t *testing.T) {
	matched := numberedCourses(14)

	tests := []struct {
		name     string
		page     int
		expected []int
	}{
		{name: "first page", page: 1, expected: []int{1, 2, 3, 4, 5, 6}},
		{name: "second page", page: 2, expected: []int{7, 8, 9, 10, 11, 12}},
		{name: "last partial page", page: 3, expected: []int{13, 14}},
		{name: "beyond last page", page: 4, expected: []int{}},
		{name: "page below one", page: 0, expected: []int{1, 2, 3, 4, 5, 6}},
		{name: "largest int page", page: math.MaxInt, expected: []int{}},
		{name: "page whose offset overflows", page: math.MaxInt/PageSize + 2, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Paginate(matched, tt.page)
			require.NotNil(t, items)
			assert.Equal(t, tt.expected, ids(items))
		})
	}
}

func TestPaginate_CoversAllItems(t *testing.T) {
	for n := 0; n <= 25; n++ {
		matched := numberedCourses(n)
		total := TotalPages(n)

		sum := 0
		for page := 1; page <= total; page++ {
			items := Paginate(matched, page)
			if page < total {
				assert.Len(t, items, PageSize, "n=%d page=%d", n, page)
			}
			sum += len(items)
		}
		assert.Equal(t, n, sum, "n=%d", n)
	}
}

func rangeString(items []models.PageRangeItem) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		if it.Ellipsis {
			out = append(out, models.Ellipsis)
			continue
		}
		out = append(out, it.Page)
	}
	return out
}

func TestPageRange(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		current  int
		expected []any
	}{
		{name: "no pages", total: 0, current: 1, expected: []any{}},
		{name: "single page", total: 1, current: 1, expected: []any{1}},
		{name: "small total", total: 3, current: 2, expected: []any{1, 2, 3}},
		{name: "first of ten", total: 10, current: 1, expected: []any{1, 2, "...", 10}},
		{name: "middle of ten", total: 10, current: 5, expected: []any{1, "...", 4, 5, 6, "...", 10}},
		{name: "last of ten", total: 10, current: 10, expected: []any{1, "...", 9, 10}},
		{name: "single gap filled", total: 10, current: 3, expected: []any{1, 2, 3, 4, "...", 10}},
		{name: "single gap filled at end", total: 10, current: 8, expected: []any{1, "...", 7, 8, 9, 10}},
		{name: "five pages middle", total: 5, current: 3, expected: []any{1, 2, 3, 4, 5}},
		{name: "current beyond total", total: 3, current: 7, expected: []any{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rangeString(PageRange(tt.total, tt.current)))
		})
	}
}

func TestPageRangeItem_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(PageRange(10, 5))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"...",4,5,6,"...",10]`, string(data))
}

func TestEngine_Evaluate(t *testing.T) {
	engine := NewEngine(numberedCourses(14), nil)

	result := engine.Evaluate(models.NewFilterState().WithPage(3))
	assert.Len(t, result.Matched, 14)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, []int{13, 14}, ids(result.PageItems))
	assert.Equal(t, []any{1, 2, 3}, rangeString(result.Range))
}

func TestEngine_Evaluate_HugePageFromAddress(t *testing.T) {
	engine := NewEngine(numberedCourses(14), nil)
	state := ParseAddress(NewURLAddress(url.Values{KeyPage: {strconv.Itoa(math.MaxInt)}}))
	require.Equal(t, math.MaxInt, state.Page)

	result := engine.Evaluate(state)
	assert.Len(t, result.Matched, 14)
	assert.Equal(t, 3, result.TotalPages)
	assert.NotNil(t, result.PageItems)
	assert.Empty(t, result.PageItems)
	assert.Equal(t, []any{1, 2, 3}, rangeString(result.Range))
}

func TestEngine_EmptyCatalog(t *testing.T) {
	engine := NewEngine(nil, nil)

	result := engine.Evaluate(models.NewFilterState())
	assert.Empty(t, result.Matched)
	assert.Equal(t, 0, result.TotalPages)
	assert.Empty(t, result.PageItems)
	assert.Empty(t, result.Range)

	facets := engine.Facets()
	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Levels)
}

func TestEngine_OwnsCatalogCopy(t *testing.T) {
	courses := testCourses()
	engine := NewEngine(courses, nil)

	courses[0].Title = "changed"
	engine.Courses()[1].Title = "changed too"

	all := engine.Courses()
	assert.Equal(t, "React Basics", all[0].Title)
	assert.Equal(t, "UI Fundamentals", all[1].Title)
}

func TestEngine_Listing(t *testing.T) {
	engine := NewEngine(testCourses(), nil)
	state := models.NewFilterState().WithCategoryToggled("Design")

	listing := engine.Listing(state)
	assert.Equal(t, 2, listing.TotalMatched)
	assert.Equal(t, 1, listing.TotalPages)
	assert.True(t, listing.HasActiveFilters)
	assert.Equal(t, "categories=Design", listing.Query)
	require.Len(t, listing.Courses, 2)
	assert.Equal(t, "UI Fundamentals", listing.Courses[0].Title)
	assert.Len(t, listing.Facets.Categories, 5)
}
