package commands

import (
	"context"

	"propertyservice/internal/core/domain/model/listing"
)

// ArchiveSoldListingsCommandHandler retires approved listings that were sold.
// All archived listings are persisted within a single transaction.
type ArchiveSoldListingsCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewArchiveSoldListingsCommandHandler creates a handler for the archival sweep.
func NewArchiveSoldListingsCommandHandler(uowFactory ListingUoWFactory) ArchiveSoldListingsCommandHandler {
	return ArchiveSoldListingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle retrieves all approved listings marked Sold and archives each one.
func (h *ArchiveSoldListingsCommandHandler) Handle(ctx context.Context, cmd ArchiveSoldListingsCommand) error {
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
	properties, err := repo.GetAllByApprovalAndStatus(ctx, listing.ApprovalApproved, listing.StatusSold)
	if err != nil {
		return err
	}

	for _, property := range properties {
		property.Archive()

		if err = repo.Update(ctx, property); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
