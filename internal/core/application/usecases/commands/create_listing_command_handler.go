package commands

import (
	"context"

	"propertyservice/internal/core/domain/model/listing"
)

// CreateListingCommandHandler handles the business logic for listing creation.
// Builds the owned location, constructs the aggregate in its initial approval
// state, and persists both within a single transaction.
type CreateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewCreateListingCommandHandler creates a handler for listing creation.
// Requires a ListingUoWFactory for transactional persistence.
func NewCreateListingCommandHandler(uowFactory ListingUoWFactory) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing creation command.
// Seller submissions start as drafts; admin submissions start out approved.
func (h *CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := listing.NewLocation(
		cmd.Address(), cmd.City(), cmd.State(),
		cmd.Country(), cmd.Zipcode(), cmd.Latitude(), cmd.Longitude(),
	)
	if err != nil {
		return err
	}

	newProperty := listing.NewProperty
	if cmd.AdminApproved() {
		newProperty = listing.NewAdminApprovedProperty
	}

	property, err := newProperty(
		cmd.PropertyID(), cmd.Title(), cmd.Description(),
		cmd.Type(), cmd.Status(), location, cmd.OwnerID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ListingRepository().Add(ctx, property); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
