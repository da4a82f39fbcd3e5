package queries

import (
	"errors"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/pkg/guard"
)

var ErrListOwnerListingsQueryIsNotConstructed = errors.New(
	"ListOwnerListingsQuery must be created via NewListOwnerListingsQuery constructor",
)

// ListOwnerListingsQuery retrieves every listing belonging to one owner,
// regardless of approval state. This is the seller dashboard view.
type ListOwnerListingsQuery struct {
	ownerID kernel.UUID
	page    Page

	guard guard.ConstructorGuard
}

// NewListOwnerListingsQuery creates a query for an owner's listings.
func NewListOwnerListingsQuery(ownerID kernel.UUID, page Page) (ListOwnerListingsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListOwnerListingsQuery{}, err
	}

	return ListOwnerListingsQuery{
		ownerID: ownerID,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOwnerListingsQuery) Validate() error {
	return q.guard.Validate(ErrListOwnerListingsQueryIsNotConstructed)
}

// OwnerID returns the identifier of the owner.
func (q ListOwnerListingsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Page returns the normalized pagination request.
func (q ListOwnerListingsQuery) Page() Page {
	return q.page
}
