// Package errs provides standardized error types for the property service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the failure taxonomy of the listing workflow:
//   - ObjectNotFoundError: an entity is absent from the store
//   - OwnerListingsNotFoundError: an owner has zero listings
//   - ValueIsInvalidError / ValueIsRequiredError: bad or missing input
//   - MappingError: record-to-domain translation failure
//   - SaveError / FetchError: unexpected persistence failures on write / read
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify errors exclusively through errors.Is against the
// sentinels; message text is for diagnostics only.
package errs
