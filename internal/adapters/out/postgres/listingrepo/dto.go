// Package listingrepo provides data transfer objects and mapping functions for
// listing persistence. It implements the repository pattern for the property
// aggregate, handling the conversion between domain entities and their
// relational representation: a properties table plus an owned locations table.
package listingrepo

import (
	"time"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"

	"github.com/google/uuid"
)

// PropertyDTO represents the database structure for persisting property
// aggregates. The owned location lives in its own table and is referenced
// through LocationID; both rows share one lifecycle.
type PropertyDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title          string      `gorm:"type:varchar(150);not null"`
	Description    string      `gorm:"type:varchar(500)"`
	PropertyType   string      `gorm:"type:varchar(20);not null;index"`
	Status         string      `gorm:"type:varchar(20);not null;index"`
	ApprovalStatus string      `gorm:"type:varchar(30);not null;index"`
	LocationID     int64       `gorm:"not null"`
	Location       LocationDTO `gorm:"foreignKey:LocationID"`
	OwnerID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time   `gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime;index"`
}

// TableName specifies the database table name for property entities.
func (PropertyDTO) TableName() string {
	return "properties"
}

// LocationDTO represents the address row owned by exactly one property.
type LocationDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Address   string `gorm:"type:varchar(255);not null"`
	City      string `gorm:"type:varchar(100);not null"`
	State     string `gorm:"type:varchar(30);not null;index"`
	Country   string `gorm:"type:varchar(100);not null"`
	Zipcode   int    `gorm:"not null"`
	Latitude  *float32
	Longitude *float32
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a property aggregate to its database representation.
// Store-managed timestamps are left zero so GORM fills them.
func fromDomain(property *listing.Property) PropertyDTO {
	loc := property.Location()

	return PropertyDTO{
		ID:             property.ID().Bytes(),
		Title:          property.Title(),
		Description:    property.Description(),
		PropertyType:   property.Type().String(),
		Status:         property.Status().String(),
		ApprovalStatus: property.ApprovalStatus().String(),
		LocationID:     loc.ID(),
		Location: LocationDTO{
			ID:        loc.ID(),
			Address:   loc.Address(),
			City:      loc.City(),
			State:     loc.State().String(),
			Country:   loc.Country(),
			Zipcode:   loc.Zipcode(),
			Latitude:  loc.Latitude(),
			Longitude: loc.Longitude(),
		},
		OwnerID: property.OwnerID().Bytes(),
	}
}

// toDomain converts a database DTO to a property aggregate.
// Reconstructs the complete aggregate including workflow state and timestamps.
func toDomain(dto PropertyDTO) (*listing.Property, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, errs.NewMappingError("property", err)
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, errs.NewMappingError("property", err)
	}

	approval, err := listing.ApprovalStatusFromString(dto.ApprovalStatus)
	if err != nil {
		return nil, errs.NewMappingError("property", err)
	}

	location, err := listing.RestoreLocation(
		dto.Location.ID,
		dto.Location.Address,
		dto.Location.City,
		listing.Region(dto.Location.State),
		dto.Location.Country,
		dto.Location.Zipcode,
		dto.Location.Latitude,
		dto.Location.Longitude,
	)
	if err != nil {
		return nil, errs.NewMappingError("location", err)
	}

	property, err := listing.RestoreProperty(
		id,
		dto.Title,
		dto.Description,
		listing.PropertyType(dto.PropertyType),
		listing.Status(dto.Status),
		approval,
		location,
		ownerID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
	if err != nil {
		return nil, errs.NewMappingError("property", err)
	}

	return property, nil
}
