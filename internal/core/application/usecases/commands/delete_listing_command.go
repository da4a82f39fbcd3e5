package commands

import (
	"errors"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/pkg/guard"
)

var ErrDeleteListingCommandIsNotConstructed = errors.New(
	"DeleteListingCommand must be created via NewDeleteListingCommand constructor",
)

// DeleteListingCommand represents a request to permanently remove a listing
// and its owned location. Deletion is orthogonal to archival: any listing
// can be deleted regardless of its workflow state.
type DeleteListingCommand struct { //nolint:recvcheck //using for validation
	propertyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteListingCommand creates a command to delete a listing.
func NewDeleteListingCommand(propertyID kernel.UUID) (DeleteListingCommand, error) {
	command := DeleteListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPropertyID(propertyID); err != nil {
		return DeleteListingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteListingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteListingCommandIsNotConstructed)
}

// PropertyID returns the identifier of the listing to delete.
func (c DeleteListingCommand) PropertyID() kernel.UUID {
	return c.propertyID
}

func (c *DeleteListingCommand) setPropertyID(propertyID kernel.UUID) error {
	if err := propertyID.Validate(); err != nil {
		return err
	}

	c.propertyID = propertyID
	return nil
}
