package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as unwrap targets for classification with errors.Is.
var (
	// ErrObjectNotFound indicates that a referenced worker, order, or assignment does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsRequired indicates that a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates that a value fails validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrNoCapacity indicates that no worker can take more work right now.
	// Recoverable: callers and the backlog sweep may retry later.
	ErrNoCapacity = errors.New("no capacity")

	// ErrInvalidCode indicates that a one-time code is missing, expired, or mismatched.
	ErrInvalidCode = errors.New("invalid code")

	// ErrIllegalState indicates that an operation was invoked on an entity
	// whose current state does not allow it. Never retried.
	ErrIllegalState = errors.New("illegal state")

	// ErrNotification indicates that an outbound notification could not be delivered.
	// Logged and swallowed; never unwinds a committed state transition.
	ErrNotification = errors.New("notification delivery failed")
)

// sanitize removes line breaks from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError reports that an entity referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// NoCapacityError reports that an order could not be assigned because no worker
// is available or the selected worker is at its workload cap.
type NoCapacityError struct {
	Reason string
	Cause  error
}

// NewNoCapacityError creates a NoCapacityError with the given reason.
func NewNoCapacityError(reason string) *NoCapacityError {
	return &NoCapacityError{Reason: reason}
}

// NewNoCapacityErrorWithCause creates a NoCapacityError wrapping an underlying cause.
func NewNoCapacityErrorWithCause(reason string, cause error) *NoCapacityError {
	return &NoCapacityError{Reason: reason, Cause: cause}
}

func (e *NoCapacityError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrNoCapacity, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrNoCapacity, e.Reason))
}

func (e *NoCapacityError) Unwrap() error {
	return ErrNoCapacity
}

// InvalidCodeError reports a one-time code that is missing, expired, or mismatched.
// The Key identifies the cached code for diagnostics; the code itself is never
// included in the message.
type InvalidCodeError struct {
	Key   string
	Cause error
}

// NewInvalidCodeError creates an InvalidCodeError for the given cache key.
func NewInvalidCodeError(key string) *InvalidCodeError {
	return &InvalidCodeError{Key: key}
}

// NewInvalidCodeErrorWithCause creates an InvalidCodeError wrapping an underlying cause.
func NewInvalidCodeErrorWithCause(key string, cause error) *InvalidCodeError {
	return &InvalidCodeError{Key: key, Cause: cause}
}

func (e *InvalidCodeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: key is: %s (cause: %s)", ErrInvalidCode, e.Key, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: key is: %s", ErrInvalidCode, e.Key))
}

func (e *InvalidCodeError) Unwrap() error {
	return ErrInvalidCode
}

// IllegalStateError reports an operation applied to an entity in a state
// that does not permit it.
type IllegalStateError struct {
	Entity string
	State  string
	Cause  error
}

// NewIllegalStateError creates an IllegalStateError for the given entity and state.
func NewIllegalStateError(entity, state string) *IllegalStateError {
	return &IllegalStateError{Entity: entity, State: state}
}

// NewIllegalStateErrorWithCause creates an IllegalStateError wrapping an underlying cause.
func NewIllegalStateErrorWithCause(entity, state string, cause error) *IllegalStateError {
	return &IllegalStateError{Entity: entity, State: state, Cause: cause}
}

func (e *IllegalStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %s (cause: %s)", ErrIllegalState, e.Entity, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %s", ErrIllegalState, e.Entity, e.State))
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}

// NotificationError reports a failed outbound notification.
type NotificationError struct {
	Recipient string
	Cause     error
}

// NewNotificationError creates a NotificationError for the given recipient.
func NewNotificationError(recipient string, cause error) *NotificationError {
	return &NotificationError{Recipient: recipient, Cause: cause}
}

func (e *NotificationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: recipient is: %s (cause: %s)", ErrNotification, e.Recipient, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: recipient is: %s", ErrNotification, e.Recipient))
}

func (e *NotificationError) Unwrap() error {
	return ErrNotification
}
