package models

// Course represents a single course of the catalog
type Course struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	ID         int    `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	Category   string `json:"category"`
	Level      string `json:"level"`
	Duration   string `json:"duration"`
	Image      string `json:"image"`
}

// ListItem converts a course to its list representation
func (c Course) ListItem() CourseListItem {
	return CourseListItem{
		ID:         c.ID,
		Slug:       c.Slug,
		Title:      c.Title,
		Instructor: c.Instructor,
		Category:   c.Category,
		Level:      c.Level,
		Duration:   c.Duration,
		Image:      c.Image,
	}
}

// Feature represents a feature tile on the home page
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
