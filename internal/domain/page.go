package domain

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListOptions carries pagination and ordering for list queries.
// Pages are 1-based; ordering is single-field with an allowlist enforced
// by each repository.
type ListOptions struct {
	Page     int
	Limit    int
	SortBy   string
	SortType string
}

// Normalize applies the documented defaults: page 1, page size 10,
// descending order.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 10
	}
	if o.SortType != SortAsc {
		o.SortType = SortDesc
	}
	return o
}

// Offset returns the row offset for the normalized page
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}
