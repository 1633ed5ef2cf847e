// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the core:
//   - ValueIsRequiredError: a required value is missing (recoverable by the caller)
//   - ValueIsInvalidError: a supplied value is malformed
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - ObjectNotFoundError: a referenced entity is absent
//   - InvalidTransitionError: a shipment or order status change violates the lifecycle
//   - PermissionDeniedError: the authorization evaluator denied an operation
//   - ConstraintConflictError: the store rejected a write on a uniqueness constraint
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The analytics "no data" condition is deliberately not represented here:
// it is a valid-but-empty query result, not an error.
package errs
