// Package guard implements a defensive pattern that ensures value objects,
// commands, and queries are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes a zero-value
// instance distinguishable from a properly constructed one.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object went through its
// constructor. The zero value fails validation.
//
// Example usage:
//
//	type SubmitListingCommand struct {
//	    propertyID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewSubmitListingCommand(id kernel.UUID) (SubmitListingCommand, error) {
//	    if err := id.Validate(); err != nil {
//	        return SubmitListingCommand{}, err
//	    }
//	    return SubmitListingCommand{propertyID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitListingCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitListingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
