package queries

// Paginated wraps a page of items with the total row count for the filter.
type Paginated[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int64
}
