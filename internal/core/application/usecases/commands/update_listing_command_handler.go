package commands

import (
	"context"
)

// UpdateListingCommandHandler handles partial updates of a property listing.
// Loads the aggregate, applies only the provided fields, and persists the
// result within a single transaction. Concurrent updates follow a
// last-write-wins policy.
type UpdateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewUpdateListingCommandHandler creates a handler for listing updates.
func NewUpdateListingCommandHandler(uowFactory ListingUoWFactory) UpdateListingCommandHandler {
	return UpdateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. The approval state is never touched
// here; workflow transitions go through ChangeApprovalCommand.
func (h *UpdateListingCommandHandler) Handle(ctx context.Context, cmd UpdateListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ListingRepository()
	property, err := repo.Get(ctx, cmd.PropertyID())
	if err != nil {
		return err
	}

	if cmd.Title() != nil {
		if err = property.Rename(*cmd.Title()); err != nil {
			return err
		}
	}
	if cmd.Description() != nil {
		if err = property.ChangeDescription(*cmd.Description()); err != nil {
			return err
		}
	}
	if cmd.Type() != nil {
		if err = property.ChangeType(*cmd.Type()); err != nil {
			return err
		}
	}
	if cmd.Status() != nil {
		if err = property.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}
	if err = property.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = repo.Update(ctx, property); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
