// Package errs provides the standardized error taxonomy for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy covers the failure modes of the assignment core:
//   - ObjectNotFoundError: a referenced worker/order/assignment does not exist
//   - NoCapacityError: no available worker, or the selected worker is at cap (recoverable)
//   - InvalidCodeError: a one-time code is missing, expired, or mismatched
//   - IllegalStateError: an operation applied to an entity in the wrong state
//   - NotificationError: outbound notification failure (logged, never rolls back state)
//   - ValueIsRequiredError / ValueIsInvalidError: construction-time validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrNoCapacity) usable with errors.Is
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() targeting the sentinel
//
// Propagation policy: ObjectNotFound and IllegalState are always surfaced to the
// caller and never retried internally; NoCapacity is retried by deferral during
// backlog sweeps; Notification errors are logged and swallowed.
package errs
