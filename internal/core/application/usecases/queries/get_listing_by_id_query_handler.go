package queries

import (
	"context"

	"propertyservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetListingByIDQueryHandler retrieves a single listing read model.
type GetListingByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetListingByIDQueryHandler creates a handler for single-listing reads.
// Requires a GORM database connection for query execution.
func NewGetListingByIDQueryHandler(db *gorm.DB) GetListingByIDQueryHandler {
	return GetListingByIDQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no listing
// with the given identifier exists.
func (h GetListingByIDQueryHandler) Handle(
	ctx context.Context,
	query GetListingByIDQuery,
) (ListingResponse, error) {
	if err := query.Validate(); err != nil {
		return ListingResponse{}, err
	}

	rows := make([]listingRow, 0, 1)
	err := listingQuery(ctx, h.db).
		Select(listingSelect).
		Where("properties.id = ?", query.PropertyID().String()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return ListingResponse{}, errs.NewFetchError("property", err)
	}

	if len(rows) == 0 {
		return ListingResponse{}, errs.NewObjectNotFoundError("propertyId", query.PropertyID())
	}

	return rows[0].toResponse(), nil
}
