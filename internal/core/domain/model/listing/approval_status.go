package listing

import (
	"fmt"

	"propertyservice/internal/pkg/errs"
)

// ApprovalStatus represents the review workflow state of a property listing.
// It is independent of the listing availability Status: a property can be
// Available yet still sitting in draft, and a Sold property can remain
// approved until it is archived.
//
// Workflow:
//
//	draft ──submit──> pending_approval ──approve──> approved ──archive──> archived
//	                        │
//	                        └──reject──> rejected
//
// Admin-direct creation starts at approved, bypassing draft and
// pending_approval entirely.
//
// Transitions are deliberately unguarded: each transition method returns its
// target state regardless of the current one, matching the behavior of the
// original review workflow (submitting an already-approved property moves it
// back to pending_approval). A legality check would live here if the policy
// ever tightens.
type ApprovalStatus string

const (
	// ApprovalDraft is the initial state of a seller-created listing.
	ApprovalDraft ApprovalStatus = "draft"

	// ApprovalPending means the listing awaits an admin decision.
	ApprovalPending ApprovalStatus = "pending_approval"

	// ApprovalApproved means the listing is visible to buyers.
	ApprovalApproved ApprovalStatus = "approved"

	// ApprovalRejected means an admin declined the listing.
	ApprovalRejected ApprovalStatus = "rejected"

	// ApprovalArchived means the listing was retired. No transition leads
	// out of archived; deletion is a separate, orthogonal operation.
	ApprovalArchived ApprovalStatus = "archived"
)

func validApprovalStatuses() map[ApprovalStatus]struct{} {
	return map[ApprovalStatus]struct{}{
		ApprovalDraft:    {},
		ApprovalPending:  {},
		ApprovalApproved: {},
		ApprovalRejected: {},
		ApprovalArchived: {},
	}
}

// ApprovalStatusFromString reconstructs an ApprovalStatus from its stored
// representation. Values are matched exactly; persistence always writes the
// canonical lowercase form.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	status := ApprovalStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the value is one of the known workflow states.
func (s ApprovalStatus) Validate() error {
	if _, ok := validApprovalStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%q is not a valid approval status", string(s)))
	}
	return nil
}

// String returns the canonical wire representation of the status.
func (s ApprovalStatus) String() string {
	return string(s)
}

// Submit moves the listing into the review queue.
func (s ApprovalStatus) Submit() ApprovalStatus {
	return ApprovalPending
}

// Approve marks the listing as visible to buyers.
func (s ApprovalStatus) Approve() ApprovalStatus {
	return ApprovalApproved
}

// Reject declines the listing.
func (s ApprovalStatus) Reject() ApprovalStatus {
	return ApprovalRejected
}

// Archive retires the listing.
func (s ApprovalStatus) Archive() ApprovalStatus {
	return ApprovalArchived
}
