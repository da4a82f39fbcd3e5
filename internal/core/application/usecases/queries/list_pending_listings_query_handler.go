package queries

import (
	"context"

	"propertyservice/internal/core/domain/model/listing"

	"gorm.io/gorm"
)

// ListPendingListingsQueryHandler serves the admin review queue.
type ListPendingListingsQueryHandler struct {
	db *gorm.DB
}

// NewListPendingListingsQueryHandler creates a handler for the review queue query.
func NewListPendingListingsQueryHandler(db *gorm.DB) ListPendingListingsQueryHandler {
	return ListPendingListingsQueryHandler{db: db}
}

// Handle returns a page of pending listings sorted by last modification.
func (h ListPendingListingsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingListingsQuery,
) (PagedListingsResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedListingsResponse{}, err
	}

	return listListings(ctx, h.db, query.Page(), withApproval(listing.ApprovalPending.String()))
}
