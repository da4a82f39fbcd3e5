package ports

import (
	"context"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for property aggregates.
// It covers the write side of the listing workflow; list-shaped reads go
// through the query handlers directly.
type ListingRepository interface {
	// Add persists a new property aggregate together with its owned location.
	Add(ctx context.Context, aggregate *listing.Property) error

	// Update persists changes to an existing property aggregate, including
	// in-place changes to its owned location.
	Update(ctx context.Context, aggregate *listing.Property) error

	// Get retrieves a property aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such property exists.
	Get(ctx context.Context, id kernel.UUID) (*listing.Property, error)

	// Delete removes a property and its owned location from storage.
	// Returns an ObjectNotFoundError when no such property exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByApprovalAndStatus retrieves properties in the given approval
	// state with the given availability status. Used by the archival sweep.
	GetAllByApprovalAndStatus(ctx context.Context, approval listing.ApprovalStatus, status listing.Status) ([]*listing.Property, error)
}
