// Package errs provides standardized error types for the parcel delivery service.
// Every layer returns these types so the HTTP adapter can map failures to status
// codes with errors.Is instead of string matching.
//
// The package includes:
//   - ObjectNotFoundError: a referenced parcel, rider, user or payment does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - VersionIsInvalidError: a conditional write lost a race with another writer
//   - StoreUnavailableError: the entity store timed out or dropped the connection
//   - UnauthenticatedError, ForbiddenError: authorization failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
