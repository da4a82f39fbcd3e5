package queries

import (
	"errors"

	"propertyservice/internal/pkg/guard"
)

var ErrListPendingListingsQueryIsNotConstructed = errors.New(
	"ListPendingListingsQuery must be created via NewListPendingListingsQuery constructor",
)

// ListPendingListingsQuery retrieves the review queue: listings submitted by
// sellers that await an admin decision.
type ListPendingListingsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

// NewListPendingListingsQuery creates a query for the review queue.
func NewListPendingListingsQuery(page Page) ListPendingListingsQuery {
	return ListPendingListingsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListPendingListingsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingListingsQueryIsNotConstructed)
}

// Page returns the normalized pagination request.
func (q ListPendingListingsQuery) Page() Page {
	return q.page
}
