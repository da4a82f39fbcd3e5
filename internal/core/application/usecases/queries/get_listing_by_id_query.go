// Package queries contains read operations for the listing catalog.
// Query handlers bypass the domain model and read directly from the
// database, returning flat read models per the CQRS pattern.
package queries

import (
	"errors"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/pkg/guard"
)

var ErrGetListingByIDQueryIsNotConstructed = errors.New(
	"GetListingByIDQuery must be created via NewGetListingByIDQuery constructor",
)

// GetListingByIDQuery retrieves a single listing by its identifier,
// regardless of its approval state.
type GetListingByIDQuery struct {
	propertyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetListingByIDQuery creates a query for a single listing.
func NewGetListingByIDQuery(propertyID kernel.UUID) (GetListingByIDQuery, error) {
	if err := propertyID.Validate(); err != nil {
		return GetListingByIDQuery{}, err
	}

	return GetListingByIDQuery{
		propertyID: propertyID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetListingByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetListingByIDQueryIsNotConstructed)
}

// PropertyID returns the identifier of the requested listing.
func (q GetListingByIDQuery) PropertyID() kernel.UUID {
	return q.propertyID
}
