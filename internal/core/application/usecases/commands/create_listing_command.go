package commands

import (
	"errors"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"
	"propertyservice/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

// CreateListingCommand represents a request to create a new property listing
// together with its owned location. Optional enum fields may be left empty;
// the aggregate applies the type/status defaults, and the location applies
// the country/zipcode defaults.
//
// When adminApproved is set the listing skips the review workflow and starts
// out approved; otherwise it starts as a draft.
//
// Example:
//
//	propertyID := kernel.NewUUID()
//	cmd, err := NewCreateListingCommand(propertyID, ownerID,
//	    "Sunny plot", "South facing", listing.TypeLand, "",
//	    "Durbar Marg", "Kathmandu", listing.RegionBagmati, "", 0, nil, nil,
//	    false)
//	if err != nil {
//	    return fmt.Errorf("invalid listing data: %w", err)
//	}
//
//	handler := NewCreateListingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create listing: %w", err)
//	}
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	propertyID    kernel.UUID
	ownerID       kernel.UUID
	title         string
	description   string
	ptype         listing.PropertyType
	status        listing.Status
	address       string
	city          string
	state         listing.Region
	country       string
	zipcode       int
	latitude      *float32
	longitude     *float32
	adminApproved bool

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to register a new property listing.
// Validates identifiers and required fields; ptype and status may be empty
// (defaults apply), country and zipcode may be zero (defaults apply).
func NewCreateListingCommand(
	propertyID kernel.UUID,
	ownerID kernel.UUID,
	title string,
	description string,
	ptype listing.PropertyType,
	status listing.Status,
	address string,
	city string,
	state listing.Region,
	country string,
	zipcode int,
	latitude *float32,
	longitude *float32,
	adminApproved bool,
) (CreateListingCommand, error) {
	command := CreateListingCommand{
		description:   description,
		country:       country,
		zipcode:       zipcode,
		latitude:      latitude,
		longitude:     longitude,
		adminApproved: adminApproved,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPropertyID(propertyID),
		command.setOwnerID(ownerID),
		command.setTitle(title),
		command.setType(ptype),
		command.setStatus(status),
		command.setAddress(address),
		command.setCity(city),
		command.setState(state),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// PropertyID returns the identifier for the new listing.
func (c CreateListingCommand) PropertyID() kernel.UUID {
	return c.propertyID
}

// OwnerID returns the identifier of the submitting party.
func (c CreateListingCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Title returns the listing title.
func (c CreateListingCommand) Title() string {
	return c.title
}

// Description returns the optional listing description.
func (c CreateListingCommand) Description() string {
	return c.description
}

// Type returns the property type, empty when the default should apply.
func (c CreateListingCommand) Type() listing.PropertyType {
	return c.ptype
}

// Status returns the availability status, empty when the default should apply.
func (c CreateListingCommand) Status() listing.Status {
	return c.status
}

// Address returns the street address of the location.
func (c CreateListingCommand) Address() string {
	return c.address
}

// City returns the city of the location.
func (c CreateListingCommand) City() string {
	return c.city
}

// State returns the administrative region of the location.
func (c CreateListingCommand) State() listing.Region {
	return c.state
}

// Country returns the country, empty when the default should apply.
func (c CreateListingCommand) Country() string {
	return c.country
}

// Zipcode returns the postal code, zero when the default should apply.
func (c CreateListingCommand) Zipcode() int {
	return c.zipcode
}

// Latitude returns the optional latitude.
func (c CreateListingCommand) Latitude() *float32 {
	return c.latitude
}

// Longitude returns the optional longitude.
func (c CreateListingCommand) Longitude() *float32 {
	return c.longitude
}

// AdminApproved reports whether the listing bypasses the review workflow.
func (c CreateListingCommand) AdminApproved() bool {
	return c.adminApproved
}

func (c *CreateListingCommand) setPropertyID(propertyID kernel.UUID) error {
	if err := propertyID.Validate(); err != nil {
		return err
	}

	c.propertyID = propertyID
	return nil
}

func (c *CreateListingCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateListingCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateListingCommand) setType(ptype listing.PropertyType) error {
	if ptype != "" {
		if err := ptype.Validate(); err != nil {
			return err
		}
	}

	c.ptype = ptype
	return nil
}

func (c *CreateListingCommand) setStatus(status listing.Status) error {
	if status != "" {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *CreateListingCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateListingCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *CreateListingCommand) setState(state listing.Region) error {
	if err := state.Validate(); err != nil {
		return err
	}

	c.state = state
	return nil
}
