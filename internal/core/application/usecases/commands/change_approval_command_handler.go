package commands

import (
	"context"

	"propertyservice/internal/core/domain/model/listing"
)

// ChangeApprovalCommandHandler applies review workflow transitions.
// Each transition forces the listing into the action's target state; the
// aggregate documents why no legality check happens here.
type ChangeApprovalCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewChangeApprovalCommandHandler creates a handler for workflow transitions.
func NewChangeApprovalCommandHandler(uowFactory ListingUoWFactory) ChangeApprovalCommandHandler {
	return ChangeApprovalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the listing, applies the requested transition, and persists
// the new state within a single transaction.
func (h *ChangeApprovalCommandHandler) Handle(ctx context.Context, cmd ChangeApprovalCommand) error {
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

	applyTransition(property, cmd.Action())

	if err = repo.Update(ctx, property); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func applyTransition(property *listing.Property, action ApprovalAction) {
	switch action {
	case ActionSubmit:
		property.Submit()
	case ActionApprove:
		property.Approve()
	case ActionReject:
		property.Reject()
	case ActionArchive:
		property.Archive()
	}
}
