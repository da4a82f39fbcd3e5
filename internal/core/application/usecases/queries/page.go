package queries

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Page is a normalized pagination request. Page numbers are 1-indexed.
// Out-of-range input never fails: a page below 1 becomes 1, a size below 1
// becomes the default, and a size above the maximum is capped.
type Page struct {
	number int
	size   int
}

// NewPage normalizes raw pagination input into a valid Page.
func NewPage(number int, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return Page{number: number, size: size}
}

// Number returns the 1-indexed page number.
func (p Page) Number() int {
	return p.number
}

// Size returns the page size.
func (p Page) Size() int {
	return p.size
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.number - 1) * p.size
}

// Limit returns the maximum number of rows for this page.
func (p Page) Limit() int {
	return p.size
}

// PageMeta describes the result window of a paged listing query.
type PageMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// NewPageMeta computes result metadata for the given total row count.
func NewPageMeta(totalItems int64, page Page) PageMeta {
	totalPages := int((totalItems + int64(page.Size()) - 1) / int64(page.Size()))

	return PageMeta{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page.Number(),
		PageSize:    page.Size(),
	}
}
