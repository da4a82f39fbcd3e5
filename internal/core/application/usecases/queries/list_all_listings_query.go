package queries

import (
	"errors"

	"propertyservice/internal/pkg/guard"
)

var ErrListAllListingsQueryIsNotConstructed = errors.New(
	"ListAllListingsQuery must be created via NewListAllListingsQuery constructor",
)

// ListAllListingsQuery retrieves every listing regardless of approval state.
// This is the admin catalog view.
type ListAllListingsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

// NewListAllListingsQuery creates a query for the full catalog.
func NewListAllListingsQuery(page Page) ListAllListingsQuery {
	return ListAllListingsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListAllListingsQuery) Validate() error {
	return q.guard.Validate(ErrListAllListingsQueryIsNotConstructed)
}

// Page returns the normalized pagination request.
func (q ListAllListingsQuery) Page() Page {
	return q.page
}
