package queries

import (
	"errors"

	"propertyservice/internal/pkg/guard"
)

var ErrListApprovedListingsQueryIsNotConstructed = errors.New(
	"ListApprovedListingsQuery must be created via NewListApprovedListingsQuery constructor",
)

// ListApprovedListingsQuery retrieves the public catalog: listings that have
// passed review and are visible to buyers.
type ListApprovedListingsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

// NewListApprovedListingsQuery creates a query for the public catalog.
func NewListApprovedListingsQuery(page Page) ListApprovedListingsQuery {
	return ListApprovedListingsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListApprovedListingsQuery) Validate() error {
	return q.guard.Validate(ErrListApprovedListingsQueryIsNotConstructed)
}

// Page returns the normalized pagination request.
func (q ListApprovedListingsQuery) Page() Page {
	return q.page
}
