package listing

import (
	"errors"
	"fmt"
	"time"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/pkg/errs"
)

const (
	maxTitleLength       = 150
	maxDescriptionLength = 500
)

// ErrPropertyIsNotConstructed is returned when a Property instance was not
// created through NewProperty, NewAdminApprovedProperty, or RestoreProperty.
var ErrPropertyIsNotConstructed = errors.New("Property must be created via NewProperty, NewAdminApprovedProperty, or RestoreProperty")

// Property is the aggregate root of a listing. It owns exactly one Location
// and carries two independent states: the availability Status and the
// ApprovalStatus review workflow.
//
// Invariants:
//   - id and ownerID are valid UUIDs; ownerID never changes after creation
//   - the owned Location is always present and valid
//   - title is non-empty and bounded; description is optional and bounded
//   - approval transitions go through the Submit/Approve/Reject/Archive
//     methods (unguarded by design, see ApprovalStatus)
//
// Timestamps are store-managed: they are zero on a fresh aggregate and only
// populated when restoring from persistence. updatedAt is the sort key of
// every listing query.
type Property struct {
	id          kernel.UUID
	title       string
	description string
	ptype       PropertyType
	status      Status
	approval    ApprovalStatus
	location    *Location
	ownerID     kernel.UUID
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProperty creates a seller-submitted listing in the draft approval state.
// An empty ptype defaults to Land and an empty status to Available.
func NewProperty(
	id kernel.UUID,
	title string,
	description string,
	ptype PropertyType,
	status Status,
	location *Location,
	ownerID kernel.UUID,
) (*Property, error) {
	return newProperty(id, title, description, ptype, status, ApprovalDraft, location, ownerID)
}

// NewAdminApprovedProperty creates a listing that starts out approved,
// bypassing the draft and pending_approval stages. Used for trusted direct
// entry by admins.
func NewAdminApprovedProperty(
	id kernel.UUID,
	title string,
	description string,
	ptype PropertyType,
	status Status,
	location *Location,
	ownerID kernel.UUID,
) (*Property, error) {
	return newProperty(id, title, description, ptype, status, ApprovalApproved, location, ownerID)
}

func newProperty(
	id kernel.UUID,
	title string,
	description string,
	ptype PropertyType,
	status Status,
	approval ApprovalStatus,
	location *Location,
	ownerID kernel.UUID,
) (*Property, error) {
	property := &Property{
		approval:      approval,
		isConstructed: true,
	}

	if ptype == "" {
		ptype = TypeLand
	}
	if status == "" {
		status = StatusAvailable
	}

	if err := errors.Join(
		property.setID(id),
		property.setTitle(title),
		property.setDescription(description),
		property.setType(ptype),
		property.setStatus(status),
		property.setLocation(location),
		property.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return property, nil
}

// RestoreProperty reconstructs a Property from persistence, including its
// approval state and store-managed timestamps.
func RestoreProperty(
	id kernel.UUID,
	title string,
	description string,
	ptype PropertyType,
	status Status,
	approval ApprovalStatus,
	location *Location,
	ownerID kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Property, error) {
	property := &Property{isConstructed: true}

	if err := errors.Join(
		property.setID(id),
		property.setTitle(title),
		property.setDescription(description),
		property.setType(ptype),
		property.setStatus(status),
		property.setApproval(approval),
		property.setLocation(location),
		property.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	property.createdAt = createdAt
	property.updatedAt = updatedAt
	return property, nil
}

// Validate ensures the Property was created through a constructor.
func (p *Property) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPropertyIsNotConstructed
	}
	return nil
}

// IsEqual compares two properties by identity.
func (p *Property) IsEqual(other *Property) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the property's unique identifier.
func (p *Property) ID() kernel.UUID {
	return p.id
}

// Title returns the listing title.
func (p *Property) Title() string {
	return p.title
}

// Description returns the optional listing description.
func (p *Property) Description() string {
	return p.description
}

// Type returns the property type.
func (p *Property) Type() PropertyType {
	return p.ptype
}

// Status returns the listing availability status.
func (p *Property) Status() Status {
	return p.status
}

// ApprovalStatus returns the current review workflow state.
func (p *Property) ApprovalStatus() ApprovalStatus {
	return p.approval
}

// Location returns the owned address record.
func (p *Property) Location() *Location {
	return p.location
}

// OwnerID returns the identifier of the submitting party.
func (p *Property) OwnerID() kernel.UUID {
	return p.ownerID
}

// CreatedAt returns the store-managed creation timestamp.
func (p *Property) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the store-managed last-modification timestamp.
func (p *Property) UpdatedAt() time.Time {
	return p.updatedAt
}

// Submit moves the listing into the review queue.
func (p *Property) Submit() {
	p.approval = p.approval.Submit()
}

// Approve makes the listing visible to buyers.
func (p *Property) Approve() {
	p.approval = p.approval.Approve()
}

// Reject declines the listing.
func (p *Property) Reject() {
	p.approval = p.approval.Reject()
}

// Archive retires the listing.
func (p *Property) Archive() {
	p.approval = p.approval.Archive()
}

// Rename changes the listing title.
func (p *Property) Rename(title string) error {
	return p.setTitle(title)
}

// ChangeDescription replaces the listing description.
func (p *Property) ChangeDescription(description string) error {
	return p.setDescription(description)
}

// ChangeType changes the property type.
func (p *Property) ChangeType(ptype PropertyType) error {
	return p.setType(ptype)
}

// ChangeStatus changes the listing availability status.
func (p *Property) ChangeStatus(status Status) error {
	return p.setStatus(status)
}

// UpdateLocation applies a partial update to the owned Location, keeping
// its store identity. The location is never replaced, only mutated in place.
func (p *Property) UpdateLocation(patch LocationPatch) error {
	return p.location.ApplyPatch(patch)
}

func (p *Property) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Property) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsInvalidErrorWithCause("title",
			fmt.Errorf("length %d exceeds maximum of %d", len(title), maxTitleLength))
	}
	p.title = title
	return nil
}

func (p *Property) setDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("length %d exceeds maximum of %d", len(description), maxDescriptionLength))
	}
	p.description = description
	return nil
}

func (p *Property) setType(ptype PropertyType) error {
	if err := ptype.Validate(); err != nil {
		return err
	}
	p.ptype = ptype
	return nil
}

func (p *Property) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Property) setApproval(approval ApprovalStatus) error {
	if err := approval.Validate(); err != nil {
		return err
	}
	p.approval = approval
	return nil
}

func (p *Property) setLocation(location *Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *Property) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	p.ownerID = ownerID
	return nil
}
