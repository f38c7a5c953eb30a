package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/nextlearn/catalog/internal/config"
	"github.com/nextlearn/catalog/internal/discovery"
	"github.com/nextlearn/catalog/internal/logger"
	"github.com/nextlearn/catalog/internal/models"
	"github.com/nextlearn/catalog/internal/services"
	"github.com/spf13/cobra"
)

type coursesOptions struct {
	search     string
	categories []string
	levels     []string
	page       int
	facets     bool
}

var coursesOpts coursesOptions

// sessionOpener starts listing sessions over an address store
type sessionOpener interface {
	Open(store discovery.AddressStore, opts ...discovery.SessionOption) *discovery.Session
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Search and filter the catalog from the terminal",
	Long: `List one page of the course catalog with the same search, facet and
pagination rules as the website. The listing address is printed so the
result can be opened in a browser.`,
	Example: `  nextlearn courses --search react
  nextlearn courses --category Design --category Marketing --level Beginner
  nextlearn courses --page 2`,
	Args: cobra.NoArgs,
	RunE: runCourses,
}

func init() {
	coursesCmd.Flags().StringVarP(&coursesOpts.search, "search", "s", "", "Text matched against title, description and instructor")
	coursesCmd.Flags().StringSliceVarP(&coursesOpts.categories, "category", "c", nil, "Category to include (repeatable)")
	coursesCmd.Flags().StringSliceVarP(&coursesOpts.levels, "level", "l", nil, "Level to include (repeatable)")
	coursesCmd.Flags().IntVarP(&coursesOpts.page, "page", "p", 1, "Page number")
	coursesCmd.Flags().BoolVar(&coursesOpts.facets, "facets", false, "Print the available categories and levels instead")
}

func runCourses(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	courses, closeSource, err := loadCatalog(cmd.Context(), cfg, logger.Logger)
	if err != nil {
		return err
	}
	defer closeSource()

	svc := services.NewCourseService(discovery.NewEngine(courses, logger.Logger), logger.Logger)
	if coursesOpts.facets {
		return printFacets(cmd.OutOrStdout(), svc.Facets())
	}
	return printCourses(cmd.OutOrStdout(), svc, coursesOpts)
}

// printCourses drives a session through the requested transitions and prints the resulting page
func printCourses(w io.Writer, svc sessionOpener, opts coursesOptions) error {
	store := discovery.NewURLAddress(nil)
	session := svc.Open(store)
	defer session.Close()

	if opts.search != "" {
		session.SetSearch(opts.search)
	}
	for _, label := range distinct(opts.categories) {
		session.ToggleCategory(label)
	}
	for _, label := range distinct(opts.levels) {
		session.ToggleLevel(label)
	}
	if opts.page != 1 {
		session.GoToPage(opts.page)
	}

	listing := session.Listing()

	if len(listing.Courses) == 0 {
		fmt.Fprintln(w, "No courses found")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tLEVEL\tINSTRUCTOR\tDURATION")
		for _, c := range listing.Courses {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Category, c.Level, c.Instructor, c.Duration)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nPage %d of %d, %d matched\n", listing.Page, listing.TotalPages, listing.TotalMatched)
	if len(listing.PageRange) > 1 {
		fmt.Fprintf(w, "Pages: %s\n", formatRange(listing.PageRange, listing.Page))
	}
	fmt.Fprintf(w, "Address: /courses%s\n", querySuffix(store.Query()))
	return nil
}

func printFacets(w io.Writer, facets models.FacetCatalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Categories:\t%s\n", strings.Join(facets.Categories, ", "))
	fmt.Fprintf(tw, "Levels:\t%s\n", strings.Join(facets.Levels, ", "))
	return tw.Flush()
}

// formatRange renders the page range with the current page in brackets
func formatRange(items []models.PageRangeItem, current int) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch {
		case item.Ellipsis:
			parts = append(parts, models.Ellipsis)
		case item.Page == current:
			parts = append(parts, fmt.Sprintf("[%d]", item.Page))
		default:
			parts = append(parts, fmt.Sprint(item.Page))
		}
	}
	return strings.Join(parts, " ")
}

func querySuffix(query string) string {
	if query == "" {
		return ""
	}
	return "?" + query
}

// distinct drops repeated labels so a flag given twice does not toggle the selection off again
func distinct(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if !slices.Contains(out, label) {
			out = append(out, label)
		}
	}
	return out
}
