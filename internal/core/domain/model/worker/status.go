package worker

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the availability state of a delivery worker.
// It implements a state machine with defined transitions to ensure workers
// follow the correct daily workflow.
//
// State transitions:
//
//	NotVerified ──(accept)──> Inactive ⇄ Available ⇄ Unavailable
//	Available/Unavailable ──(end of day)──> Inactive
//
// NotVerified is the initial state, assigned at registration. A worker never
// re-enters NotVerified: the only ways out are admin accept (to Inactive) or
// admin reject (record deletion).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotVerified is the initial status assigned at registration.
	// Workers in this status cannot start a day or receive assignments.
	NotVerified

	// Inactive indicates the worker is verified but off duty.
	Inactive

	// Available indicates the worker is on duty and accepting assignments.
	Available

	// Unavailable indicates the worker is on duty but not accepting new
	// assignments, either by choice or because the workload cap was reached.
	Unavailable
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		NotVerified: "NotVerified",
		Inactive:    "Inactive",
		Available:   "Available",
		Unavailable: "Unavailable",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotVerified: "NotVerified",
		Inactive:    "Inactive",
		Available:   "Available",
		Unavailable: "Unavailable",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are NotVerified, Inactive, Available, and Unavailable.
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
