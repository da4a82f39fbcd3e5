package queries

import (
	"context"

	"propertyservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOwnerListingsQueryHandler serves the seller dashboard.
type ListOwnerListingsQueryHandler struct {
	db *gorm.DB
}

// NewListOwnerListingsQueryHandler creates a handler for owner listing queries.
func NewListOwnerListingsQueryHandler(db *gorm.DB) ListOwnerListingsQueryHandler {
	return ListOwnerListingsQueryHandler{db: db}
}

// Handle returns a page of the owner's listings. Unlike the other list
// queries, an owner with zero listings is an error, not an empty page:
// the dashboard distinguishes "nothing listed yet" from a valid window
// past the end of the result set.
func (h ListOwnerListingsQueryHandler) Handle(
	ctx context.Context,
	query ListOwnerListingsQuery,
) (PagedListingsResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedListingsResponse{}, err
	}

	response, err := listListings(ctx, h.db, query.Page(), forOwner(query.OwnerID().Bytes()))
	if err != nil {
		return PagedListingsResponse{}, err
	}

	if response.Meta.TotalItems == 0 {
		return PagedListingsResponse{}, errs.NewOwnerListingsNotFoundError(query.OwnerID().String())
	}

	return response, nil
}
