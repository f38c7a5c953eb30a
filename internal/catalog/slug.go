package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/nextlearn/catalog/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRX = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into its URL form.
//
// Accents are stripped ("Café" becomes "cafe"), every run of characters other than
// a-z and 0-9 becomes a single dash, and leading or trailing dashes are removed.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, title)
	if err != nil {
		plain = title
	}

	slug := nonSlugRX.ReplaceAllString(strings.ToLower(plain), "-")
	return strings.Trim(slug, "-")
}

// Permalink returns the canonical "<id>-<slugified title>" slug of a course
func Permalink(course models.Course) string {
	slug := Slugify(course.Title)
	if slug == "" {
		return strconv.Itoa(course.ID)
	}
	return fmt.Sprintf("%d-%s", course.ID, slug)
}

// ParseSlugID extracts the leading course id from a slug.
// "3-data-science-bootcamp" and "3" both yield 3.
func ParseSlugID(slug string) (int, error) {
	head, _, _ := strings.Cut(slug, "-")
	id, err := strconv.Atoi(head)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid course slug: %q", slug)
	}
	return id, nil
}
