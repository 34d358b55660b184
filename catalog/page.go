package catalog

// DefaultPageSize is the number of rows per listing page.
const DefaultPageSize = 10

// PageRequest selects one page of a listing. Number is 1-based.
type PageRequest struct {
	Number int
	Size   int
}

// BuildPageRequest creates a PageRequest, falling back to DefaultPageSize for sizes below one.
func BuildPageRequest(number, size int) PageRequest {
	if size < 1 {
		size = DefaultPageSize
	}

	return PageRequest{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() uint {
	if p.Number < 1 {
		return 0
	}

	return uint((p.Number - 1) * p.Size)
}

// Limit returns the maximum number of rows on the page.
func (p PageRequest) Limit() uint {
	return uint(p.Size)
}

// Validate rejects page numbers below one and beyond the last page.
// The first page is always valid, even for an empty listing.
func (p PageRequest) Validate(total int) error {
	if p.Number < 1 {
		return ErrInvalidPage
	}

	if p.Number > 1 && p.Number > numPages(total, p.Size) {
		return ErrInvalidPage
	}

	return nil
}

// Page is one page of a listing.
type Page[T any] struct {
	Items  []T
	Number int
	Size   int
	Total  int
}

// NumPages returns the number of pages, at least one.
func (p Page[T]) NumPages() int {
	return max(numPages(p.Total, p.Size), 1)
}

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Number < p.NumPages()
}

// PreviousNumber returns the previous page number.
func (p Page[T]) PreviousNumber() int {
	return p.Number - 1
}

// NextNumber returns the next page number.
func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

// IsPaginated reports whether the listing spans more than one page.
func (p Page[T]) IsPaginated() bool {
	return p.NumPages() > 1
}

func numPages(total, size int) int {
	if size < 1 {
		return 0
	}

	return (total + size - 1) / size
}
