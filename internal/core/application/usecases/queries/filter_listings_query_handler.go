package queries

import (
	"context"

	"gorm.io/gorm"
)

// FilterListingsQueryHandler runs catalog searches. The predicate set is
// built dynamically from the query's non-nil criteria; only approved
// listings are ever visible through this handler.
type FilterListingsQueryHandler struct {
	db *gorm.DB
}

// NewFilterListingsQueryHandler creates a handler for catalog searches.
func NewFilterListingsQueryHandler(db *gorm.DB) FilterListingsQueryHandler {
	return FilterListingsQueryHandler{db: db}
}

// Handle returns a page of approved listings matching all provided criteria,
// sorted by last modification.
func (h FilterListingsQueryHandler) Handle(
	ctx context.Context,
	query FilterListingsQuery,
) (PagedListingsResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedListingsResponse{}, err
	}

	scopes := []func(*gorm.DB) *gorm.DB{approvedOnly}
	if query.Status() != nil {
		scopes = append(scopes, withStatus(query.Status().String()))
	}
	if query.Type() != nil {
		scopes = append(scopes, withType(query.Type().String()))
	}
	if query.State() != nil {
		scopes = append(scopes, withRegion(query.State().String()))
	}

	return listListings(ctx, h.db, query.Page(), scopes...)
}
