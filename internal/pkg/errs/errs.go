package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Each concrete error type below unwraps to exactly one of these.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrOwnerListingsNotFound = errors.New("owner has no listings")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsRequired       = errors.New("value is required")
	ErrMappingFailed         = errors.New("mapping failed")
	ErrSaveFailed            = errors.New("save failed")
	ErrFetchFailed           = errors.New("fetch failed")
)

// sanitize strips newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError reports that an entity could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError preserving the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// OwnerListingsNotFoundError reports that an owner has zero listings.
// Only the owner listing query produces this error; every other listing
// query treats an empty result set as a normal response.
type OwnerListingsNotFoundError struct {
	OwnerID string
}

// NewOwnerListingsNotFoundError creates an OwnerListingsNotFoundError for the given owner.
func NewOwnerListingsNotFoundError(ownerID string) *OwnerListingsNotFoundError {
	return &OwnerListingsNotFoundError{OwnerID: ownerID}
}

func (e *OwnerListingsNotFoundError) Error() string {
	return sanitize(fmt.Sprintf("%s: ownerId is: %s", ErrOwnerListingsNotFound, e.OwnerID))
}

func (e *OwnerListingsNotFoundError) Unwrap() error {
	return ErrOwnerListingsNotFound
}

// ValueIsInvalidError reports that a supplied value failed validation,
// for example an unrecognized enum constant in a filter.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError preserving the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that a required value was absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError preserving the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// MappingError reports a failure translating between a persistence record
// and its domain representation.
type MappingError struct {
	Entity string
	Cause  error
}

// NewMappingError creates a MappingError for the given entity, preserving the cause.
func NewMappingError(entity string, cause error) *MappingError {
	return &MappingError{Entity: entity, Cause: cause}
}

func (e *MappingError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrMappingFailed, e.Entity, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrMappingFailed, e.Entity))
}

func (e *MappingError) Unwrap() error {
	return ErrMappingFailed
}

// SaveError wraps an unexpected persistence failure during a write operation.
// Domain errors (not-found and validation kinds) are never wrapped; they
// propagate unchanged to the caller.
type SaveError struct {
	Entity string
	Cause  error
}

// NewSaveError creates a SaveError for the given entity, preserving the cause.
func NewSaveError(entity string, cause error) *SaveError {
	return &SaveError{Entity: entity, Cause: cause}
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrSaveFailed, e.Entity, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrSaveFailed, e.Entity))
}

func (e *SaveError) Unwrap() error {
	return ErrSaveFailed
}

// FetchError wraps an unexpected persistence failure during a read operation.
type FetchError struct {
	Entity string
	Cause  error
}

// NewFetchError creates a FetchError for the given entity, preserving the cause.
func NewFetchError(entity string, cause error) *FetchError {
	return &FetchError{Entity: entity, Cause: cause}
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrFetchFailed, e.Entity, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrFetchFailed, e.Entity))
}

func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}

// IsDomainError reports whether err is one of the domain-specific failures
// that must propagate to the caller unchanged instead of being wrapped
// into a SaveError or FetchError.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrObjectNotFound) ||
		errors.Is(err, ErrOwnerListingsNotFound) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrMappingFailed)
}
