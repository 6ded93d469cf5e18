package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment.
//
// State transitions:
//
//	Pending ──> Current ──> Delivered
//
// No transition skips a state, and Delivered is terminal. A worker may hold
// many Pending assignments but only one Current at a time.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending indicates the assignment is queued behind the worker's
	// current one.
	Pending

	// Current indicates the assignment the worker is actively delivering.
	Current

	// Delivered indicates the assignment finished. Terminal.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Current:   "Current",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Current:   "Current",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the assignment still occupies a slot of the
// worker's workload cap (Pending or Current).
func (s Status) IsActive() bool {
	return s == Pending || s == Current
}

// Promote returns the status after a queued assignment becomes current.
// Only Pending assignments may be promoted.
func (s Status) Promote() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to promote", s.String()),
		)
	}
	return Current, nil
}

// Deliver returns the status after delivery completion.
// Only the Current assignment may be delivered; a Pending one must be
// promoted first.
func (s Status) Deliver() (Status, error) {
	if s != Current {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
