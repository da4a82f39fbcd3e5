package commands

import (
	"errors"
	"fmt"

	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/pkg/errs"
	"propertyservice/internal/pkg/guard"
)

var ErrChangeApprovalCommandIsNotConstructed = errors.New(
	"ChangeApprovalCommand must be created via NewChangeApprovalCommand constructor",
)

// ApprovalAction names a workflow transition requested on a listing.
type ApprovalAction string

const (
	ActionSubmit  ApprovalAction = "submit"
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
	ActionArchive ApprovalAction = "archive"
)

// Validate checks that the value is a known workflow action.
func (a ApprovalAction) Validate() error {
	switch a {
	case ActionSubmit, ActionApprove, ActionReject, ActionArchive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid approval action", string(a)))
	}
}

// ChangeApprovalCommand represents a request to move a listing through its
// review workflow: submit, approve, reject, or archive.
//
// Example:
//
//	cmd, err := NewChangeApprovalCommand(propertyID, ActionApprove)
//	if err != nil {
//	    return err
//	}
//	handler := NewChangeApprovalCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("approval change failed: %w", err)
//	}
type ChangeApprovalCommand struct { //nolint:recvcheck //using for validation
	propertyID kernel.UUID
	action     ApprovalAction

	guard guard.ConstructorGuard
}

// NewChangeApprovalCommand creates a command for a workflow transition.
func NewChangeApprovalCommand(propertyID kernel.UUID, action ApprovalAction) (ChangeApprovalCommand, error) {
	command := ChangeApprovalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPropertyID(propertyID),
		command.setAction(action),
	); err != nil {
		return ChangeApprovalCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeApprovalCommand) Validate() error {
	return c.guard.Validate(ErrChangeApprovalCommandIsNotConstructed)
}

// PropertyID returns the identifier of the listing to transition.
func (c ChangeApprovalCommand) PropertyID() kernel.UUID {
	return c.propertyID
}

// Action returns the requested workflow transition.
func (c ChangeApprovalCommand) Action() ApprovalAction {
	return c.action
}

func (c *ChangeApprovalCommand) setPropertyID(propertyID kernel.UUID) error {
	if err := propertyID.Validate(); err != nil {
		return err
	}

	c.propertyID = propertyID
	return nil
}

func (c *ChangeApprovalCommand) setAction(action ApprovalAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
