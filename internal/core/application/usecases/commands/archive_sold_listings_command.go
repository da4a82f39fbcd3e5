package commands

import (
	"errors"

	"propertyservice/internal/pkg/guard"
)

var ErrArchiveSoldListingsCommandIsNotConstructed = errors.New(
	"ArchiveSoldListingsCommand must be created via NewArchiveSoldListingsCommand constructor",
)

// ArchiveSoldListingsCommand triggers the batch sweep that retires approved
// listings whose property has been marked Sold. Run periodically by the
// scheduler so the public catalog does not accumulate stale entries.
//
// Example:
//
//	cmd := NewArchiveSoldListingsCommand()
//	handler := NewArchiveSoldListingsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("archival sweep failed: %v", err)
//	}
type ArchiveSoldListingsCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveSoldListingsCommand creates a parameterless sweep command.
func NewArchiveSoldListingsCommand() ArchiveSoldListingsCommand {
	return ArchiveSoldListingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ArchiveSoldListingsCommand) Validate() error {
	return c.guard.Validate(ErrArchiveSoldListingsCommandIsNotConstructed)
}
