package queries

import (
	"errors"

	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/guard"
)

var ErrFilterListingsQueryIsNotConstructed = errors.New(
	"FilterListingsQuery must be created via NewFilterListingsQuery constructor",
)

// FilterListingsQuery searches the public catalog by optional criteria.
// Every criterion left nil is skipped; provided criteria combine with AND
// semantics on top of the implicit approved-only restriction.
//
// Raw filter values arrive in whatever case the client sent; they are
// normalized and checked against the known enum values up front, so an
// unknown value fails the whole request instead of silently matching
// nothing.
type FilterListingsQuery struct {
	status *listing.Status
	ptype  *listing.PropertyType
	state  *listing.Region
	page   Page

	guard guard.ConstructorGuard
}

// NewFilterListingsQuery creates a catalog search query from raw filter
// values. A nil value means the criterion is not applied.
func NewFilterListingsQuery(status, ptype, state *string, page Page) (FilterListingsQuery, error) {
	query := FilterListingsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		parsed, err := listing.ParseStatus(*status)
		if err != nil {
			return FilterListingsQuery{}, err
		}
		query.status = &parsed
	}

	if ptype != nil {
		parsed, err := listing.ParsePropertyType(*ptype)
		if err != nil {
			return FilterListingsQuery{}, err
		}
		query.ptype = &parsed
	}

	if state != nil {
		parsed, err := listing.ParseRegion(*state)
		if err != nil {
			return FilterListingsQuery{}, err
		}
		query.state = &parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q FilterListingsQuery) Validate() error {
	return q.guard.Validate(ErrFilterListingsQueryIsNotConstructed)
}

// Status returns the availability criterion, nil when not applied.
func (q FilterListingsQuery) Status() *listing.Status {
	return q.status
}

// Type returns the property type criterion, nil when not applied.
func (q FilterListingsQuery) Type() *listing.PropertyType {
	return q.ptype
}

// State returns the region criterion, nil when not applied.
func (q FilterListingsQuery) State() *listing.Region {
	return q.state
}

// Page returns the normalized pagination request.
func (q FilterListingsQuery) Page() Page {
	return q.page
}
