package queries

import (
	"context"
	"time"

	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingResponse is the read model of a property listing. Queries return it
// directly; the write-side aggregate never crosses the API boundary.
type ListingResponse struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	PropertyType   string           `json:"property_type"`
	Status         string           `json:"status"`
	ApprovalStatus string           `json:"approval_status"`
	Location       LocationResponse `json:"location"`
	OwnerID        uuid.UUID        `json:"owner_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// LocationResponse is the read model of a listing's address.
type LocationResponse struct {
	ID        int64    `json:"id"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Zipcode   int      `json:"zipcode"`
	Latitude  *float32 `json:"latitude,omitempty"`
	Longitude *float32 `json:"longitude,omitempty"`
}

// PagedListingsResponse is a page of listings plus its result metadata.
type PagedListingsResponse struct {
	Items []ListingResponse `json:"items"`
	Meta  PageMeta          `json:"meta"`
}

// listingRow is the flat join of a property and its location as selected by
// listingSelect. Field names follow the aliased column names.
type listingRow struct {
	ID             uuid.UUID
	Title          string
	Description    string
	PropertyType   string
	Status         string
	ApprovalStatus string
	OwnerID        uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LocationID     int64
	Address        string
	City           string
	State          string
	Country        string
	Zipcode        int
	Latitude       *float32
	Longitude      *float32
}

const listingSelect = `
	properties.id,
	properties.title,
	properties.description,
	properties.property_type,
	properties.status,
	properties.approval_status,
	properties.owner_id,
	properties.created_at,
	properties.updated_at,
	locations.id AS location_id,
	locations.address,
	locations.city,
	locations.state,
	locations.country,
	locations.zipcode,
	locations.latitude,
	locations.longitude`

// listingQuery starts a properties query joined with the owned locations.
func listingQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("properties").
		Joins("JOIN locations ON locations.id = properties.location_id")
}

// Predicate scopes. Each narrows a listings query by one optional criterion;
// the filter endpoint combines them with AND semantics.

func approvedOnly(db *gorm.DB) *gorm.DB {
	return db.Where("properties.approval_status = ?", listing.ApprovalApproved.String())
}

func withApproval(approval string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("properties.approval_status = ?", approval)
	}
}

func withStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("properties.status = ?", status)
	}
}

func withType(ptype string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("properties.property_type = ?", ptype)
	}
}

func withRegion(state string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("locations.state = ?", state)
	}
}

func forOwner(ownerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("properties.owner_id = ?", ownerID)
	}
}

func (r listingRow) toResponse() ListingResponse {
	return ListingResponse{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		PropertyType:   r.PropertyType,
		Status:         r.Status,
		ApprovalStatus: r.ApprovalStatus,
		OwnerID:        r.OwnerID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Location: LocationResponse{
			ID:        r.LocationID,
			Address:   r.Address,
			City:      r.City,
			State:     r.State,
			Country:   r.Country,
			Zipcode:   r.Zipcode,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
	}
}

// listListings runs a paged listings query with the given predicate scopes.
// Results are sorted by last modification, newest first.
func listListings(
	ctx context.Context,
	db *gorm.DB,
	page Page,
	scopes ...func(*gorm.DB) *gorm.DB,
) (PagedListingsResponse, error) {
	var totalItems int64
	if err := listingQuery(ctx, db).Scopes(scopes...).Count(&totalItems).Error; err != nil {
		return PagedListingsResponse{}, errs.NewFetchError("property", err)
	}

	rows := make([]listingRow, 0, page.Limit())
	err := listingQuery(ctx, db).
		Scopes(scopes...).
		Select(listingSelect).
		Order("properties.updated_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Scan(&rows).Error
	if err != nil {
		return PagedListingsResponse{}, errs.NewFetchError("property", err)
	}

	items := make([]ListingResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toResponse())
	}

	return PagedListingsResponse{
		Items: items,
		Meta:  NewPageMeta(totalItems, page),
	}, nil
}
