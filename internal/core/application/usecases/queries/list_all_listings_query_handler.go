package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAllListingsQueryHandler serves the admin catalog view.
type ListAllListingsQueryHandler struct {
	db *gorm.DB
}

// NewListAllListingsQueryHandler creates a handler for the full catalog query.
func NewListAllListingsQueryHandler(db *gorm.DB) ListAllListingsQueryHandler {
	return ListAllListingsQueryHandler{db: db}
}

// Handle returns a page of all listings sorted by last modification.
func (h ListAllListingsQueryHandler) Handle(
	ctx context.Context,
	query ListAllListingsQuery,
) (PagedListingsResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedListingsResponse{}, err
	}

	return listListings(ctx, h.db, query.Page())
}
