package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ─────────────┬──> Assigned ──> OutForDelivery ──> Delivered
//	NeedsVerification ──> Verified ──┘          │
//	                                 Assigned ──┘
//
// Any non-terminal status may move to Cancelled. Delivered and Cancelled are
// terminal. Status is a value object that validates state transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created at checkout.
	// Pending orders are eligible for assignment.
	Pending

	// NeedsVerification indicates the order requires recipient verification
	// before it becomes eligible for assignment.
	NeedsVerification

	// Verified indicates recipient verification succeeded.
	// Verified orders are eligible for assignment.
	Verified

	// Assigned indicates the order has been bound to a worker.
	Assigned

	// OutForDelivery indicates the assignment carrying this order became the
	// worker's current one.
	OutForDelivery

	// Delivered indicates the order has been successfully delivered.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Pending:           "Pending",
		NeedsVerification: "NeedsVerification",
		Verified:          "Verified",
		Assigned:          "Assigned",
		OutForDelivery:    "OutForDelivery",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:           "Pending",
		NeedsVerification: "NeedsVerification",
		Verified:          "Verified",
		Assigned:          "Assigned",
		OutForDelivery:    "OutForDelivery",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
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

// IsAssignable reports whether an order in this status is eligible for
// assignment. Only Pending and Verified orders qualify; in particular an
// Assigned order is never re-assigned.
func (s Status) IsAssignable() bool {
	return s == Pending || s == Verified
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign returns the status after binding the order to a worker.
// Only assignable statuses (Pending, Verified) may transition to Assigned.
func (s Status) Assign() (Status, error) {
	if !s.IsAssignable() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return Assigned, nil
}

// StartDelivery returns the status after the order's assignment became
// current. Only Assigned orders may transition to OutForDelivery.
func (s Status) StartDelivery() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}
	return OutForDelivery, nil
}

// Deliver returns the status after delivery completion.
// Assigned and OutForDelivery orders may transition to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Assigned && s != OutForDelivery {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel returns the status after cancellation.
// Any non-terminal status may transition to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
