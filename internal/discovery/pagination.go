package discovery

import "github.com/nextlearn/catalog/internal/models"

// PageSize is the number of courses shown per listing page
const PageSize = 6

// pages shown on each side of the current page
const rangeDelta = 1

// TotalPages returns the number of pages needed for count items
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

// Paginate cuts the page-th slice out of matched. Pages outside the
// available range yield an empty, non-nil slice.
func Paginate(matched []models.Course, page int) []models.Course {
	if page < 1 {
		page = 1
	}
	if page > TotalPages(len(matched)) {
		return []models.Course{}
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(matched))

	return append([]models.Course{}, matched[start:end]...)
}

// PageRange builds the entries of the pagination controls.
//
// The first and last pages are always present together with the pages adjacent to
// current. A gap of a single page is filled with that page, longer gaps collapse
// into one ellipsis:
//
//	PageRange(10, 5) = [1 ... 4 5 6 ... 10]
//	PageRange(10, 1) = [1 2 ... 10]
//	PageRange(3, 2)  = [1 2 3]
func PageRange(totalPages, current int) []models.PageRangeItem {
	items := make([]models.PageRangeItem, 0)
	last := 0

	for i := 1; i <= totalPages; i++ {
		if i != 1 && i != totalPages && (i < current-rangeDelta || i > current+rangeDelta) {
			continue
		}

		if last > 0 {
			switch i - last {
			case 1:
			case 2:
				items = append(items, models.PageRangeItem{Page: last + 1})
			default:
				items = append(items, models.PageRangeItem{Ellipsis: true})
			}
		}

		items = append(items, models.PageRangeItem{Page: i})
		last = i
	}

	return items
}
