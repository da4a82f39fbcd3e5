package commands

import (
	"context"
)

// DeleteListingCommandHandler handles permanent removal of a listing.
// The owned location row is removed in the same transaction.
type DeleteListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewDeleteListingCommandHandler creates a handler for listing deletion.
func NewDeleteListingCommandHandler(uowFactory ListingUoWFactory) DeleteListingCommandHandler {
	return DeleteListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Deleting a missing listing fails
// with an ObjectNotFoundError from the repository.
func (h *DeleteListingCommandHandler) Handle(ctx context.Context, cmd DeleteListingCommand) error {
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

	if err := uow.ListingRepository().Delete(ctx, cmd.PropertyID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
