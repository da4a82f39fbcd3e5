package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListApprovedListingsQueryHandler serves the buyer-facing catalog.
type ListApprovedListingsQueryHandler struct {
	db *gorm.DB
}

// NewListApprovedListingsQueryHandler creates a handler for the public catalog query.
func NewListApprovedListingsQueryHandler(db *gorm.DB) ListApprovedListingsQueryHandler {
	return ListApprovedListingsQueryHandler{db: db}
}

// Handle returns a page of approved listings sorted by last modification.
func (h ListApprovedListingsQueryHandler) Handle(
	ctx context.Context,
	query ListApprovedListingsQuery,
) (PagedListingsResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedListingsResponse{}, err
	}

	return listListings(ctx, h.db, query.Page(), approvedOnly)
}
