package listingrepo

import (
	"context"
	"errors"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormListingRepository implements ListingRepository using GORM.
type GormListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB, tracker aggregateTracker) *GormListingRepository {
	return &GormListingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new property and its owned location to the database.
// The location row is created first through the association; its generated
// identity stays internal to the store.
func (r *GormListingRepository) Add(ctx context.Context, aggregate *listing.Property) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewSaveError("property", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing property to the database, including in-place
// changes to its owned location. The property row is always touched so
// updated_at reflects location-only edits too.
func (r *GormListingRepository) Update(ctx context.Context, aggregate *listing.Property) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if dto.Location.ID != 0 {
		if err := r.db.WithContext(ctx).
			Model(&LocationDTO{}).
			Where("id = ?", dto.Location.ID).
			Updates(&dto.Location).Error; err != nil {
			return errs.NewSaveError("location", err)
		}
	}

	result := r.db.WithContext(ctx).
		Model(&PropertyDTO{}).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewSaveError("property", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("propertyId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a property by ID together with its owned location.
func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Property, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PropertyDTO
	err := r.db.WithContext(ctx).
		Preload("Location").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("propertyId", id.String())
		}
		return nil, errs.NewFetchError("property", err)
	}

	return toDomain(dto)
}

// Delete removes a property and its owned location in one transaction scope.
// The location row never outlives its property.
func (r *GormListingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var dto PropertyDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("propertyId", id.String())
		}
		return errs.NewFetchError("property", err)
	}

	if err = r.db.WithContext(ctx).Delete(&PropertyDTO{}, "id = ?", dto.ID).Error; err != nil {
		return errs.NewSaveError("property", err)
	}

	if err = r.db.WithContext(ctx).Delete(&LocationDTO{}, "id = ?", dto.LocationID).Error; err != nil {
		return errs.NewSaveError("location", err)
	}

	return nil
}

// GetAllByApprovalAndStatus retrieves all properties in the given approval
// state with the given availability status.
func (r *GormListingRepository) GetAllByApprovalAndStatus(
	ctx context.Context,
	approval listing.ApprovalStatus,
	status listing.Status,
) ([]*listing.Property, error) {
	var dtos []PropertyDTO
	err := r.db.WithContext(ctx).
		Preload("Location").
		Find(&dtos, "approval_status = ? AND status = ?", approval.String(), status.String()).Error
	if err != nil {
		return nil, errs.NewFetchError("property", err)
	}

	properties := make([]*listing.Property, 0, len(dtos))
	for _, dto := range dtos {
		property, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		properties = append(properties, property)
	}

	return properties, nil
}
