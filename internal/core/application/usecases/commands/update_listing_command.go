package commands

import (
	"errors"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"
	"propertyservice/internal/pkg/guard"
)

var ErrUpdateListingCommandIsNotConstructed = errors.New(
	"UpdateListingCommand must be created via NewUpdateListingCommand constructor",
)

// UpdateListingCommand represents a partial update of a property listing.
// Every field except the identifier is optional: a nil field means "leave
// unchanged". The owner of a listing can never be changed, so the command
// does not carry an owner field.
type UpdateListingCommand struct { //nolint:recvcheck //using for validation
	propertyID  kernel.UUID
	title       *string
	description *string
	ptype       *listing.PropertyType
	status      *listing.Status
	location    listing.LocationPatch

	guard guard.ConstructorGuard
}

// NewUpdateListingCommand creates a command for a partial listing update.
// Provided enum values are validated up front; string bounds are enforced
// by the aggregate when the update is applied.
func NewUpdateListingCommand(
	propertyID kernel.UUID,
	title *string,
	description *string,
	ptype *listing.PropertyType,
	status *listing.Status,
	location listing.LocationPatch,
) (UpdateListingCommand, error) {
	command := UpdateListingCommand{
		description: description,
		location:    location,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPropertyID(propertyID),
		command.setTitle(title),
		command.setType(ptype),
		command.setStatus(status),
		command.setLocationState(location.State),
	); err != nil {
		return UpdateListingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateListingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateListingCommandIsNotConstructed)
}

// PropertyID returns the identifier of the listing to update.
func (c UpdateListingCommand) PropertyID() kernel.UUID {
	return c.propertyID
}

// Title returns the new title, nil when unchanged.
func (c UpdateListingCommand) Title() *string {
	return c.title
}

// Description returns the new description, nil when unchanged.
func (c UpdateListingCommand) Description() *string {
	return c.description
}

// Type returns the new property type, nil when unchanged.
func (c UpdateListingCommand) Type() *listing.PropertyType {
	return c.ptype
}

// Status returns the new availability status, nil when unchanged.
func (c UpdateListingCommand) Status() *listing.Status {
	return c.status
}

// Location returns the partial location update.
func (c UpdateListingCommand) Location() listing.LocationPatch {
	return c.location
}

func (c *UpdateListingCommand) setPropertyID(propertyID kernel.UUID) error {
	if err := propertyID.Validate(); err != nil {
		return err
	}

	c.propertyID = propertyID
	return nil
}

func (c *UpdateListingCommand) setTitle(title *string) error {
	if title != nil && *title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *UpdateListingCommand) setType(ptype *listing.PropertyType) error {
	if ptype != nil {
		if err := ptype.Validate(); err != nil {
			return err
		}
	}

	c.ptype = ptype
	return nil
}

func (c *UpdateListingCommand) setStatus(status *listing.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *UpdateListingCommand) setLocationState(state *listing.Region) error {
	if state != nil {
		if err := state.Validate(); err != nil {
			return err
		}
	}

	return nil
}
