package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment is the aggregate root binding exactly one order to exactly one
// worker, with its own lifecycle independent of the order's.
//
// Invariants:
//   - At most one Current assignment per worker at any time; additional work
//     queues behind it as Pending
//   - An order has at most one non-terminal assignment
//   - Status only ever moves forward: Pending -> Current -> Delivered
//
// The assignment keeps back-references to the order and worker by ID only;
// it never cascades mutations into either aggregate.
type Assignment struct {
	// id uniquely identifies the assignment
	id kernel.UUID
	// orderID references the order being delivered
	orderID kernel.UUID
	// workerID references the worker delivering it
	workerID kernel.UUID
	// status is the current lifecycle state
	status Status
	// assignedAt is when the assignment was created
	assignedAt time.Time
	// updatedAt is when the assignment last changed state
	updatedAt time.Time
	// estimatedArrival is the promised delivery time
	estimatedArrival time.Time
	// actualDelivery is when delivery completed, nil until Delivered
	actualDelivery *time.Time
	// guard ensures the assignment was properly constructed
	guard guard.ConstructorGuard
}

// NewAssignment creates an Assignment for (order, worker) at the given time.
// The initial status must be Pending or Current: the scheduler decides which,
// based on whether the worker already holds a Current assignment.
func NewAssignment(
	id, orderID, workerID kernel.UUID,
	status Status,
	assignedAt, estimatedArrival time.Time,
) (*Assignment, error) {
	if status != Pending && status != Current {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("new assignments start as Pending or Current"),
		)
	}

	a := &Assignment{
		status:           status,
		assignedAt:       assignedAt,
		updatedAt:        assignedAt,
		estimatedArrival: estimatedArrival,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment aggregate from persistent
// storage, including timestamps and delivery state.
func RestoreAssignment(
	id, orderID, workerID kernel.UUID,
	status Status,
	assignedAt, updatedAt, estimatedArrival time.Time,
	actualDelivery *time.Time,
) (*Assignment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	a := &Assignment{
		status:           status,
		assignedAt:       assignedAt,
		updatedAt:        updatedAt,
		estimatedArrival: estimatedArrival,
		actualDelivery:   actualDelivery,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// IsEqual compares two assignments for equality based on their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// Validate checks if the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the unique identifier of the assignment.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the order being delivered.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// WorkerID returns the identifier of the worker delivering the order.
func (a *Assignment) WorkerID() kernel.UUID {
	return a.workerID
}

// Status returns the current lifecycle state.
func (a *Assignment) Status() Status {
	return a.status
}

// AssignedAt returns when the assignment was created.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// UpdatedAt returns when the assignment last changed state.
func (a *Assignment) UpdatedAt() time.Time {
	return a.updatedAt
}

// EstimatedArrival returns the promised delivery time.
func (a *Assignment) EstimatedArrival() time.Time {
	return a.estimatedArrival
}

// ActualDelivery returns when delivery completed, or nil if not delivered.
func (a *Assignment) ActualDelivery() *time.Time {
	return a.actualDelivery
}

// IsActive reports whether the assignment counts against the worker's
// workload cap.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// Promote moves a queued assignment to Current at the given time.
// Callers must ensure the worker holds no other Current assignment.
func (a *Assignment) Promote(now time.Time) error {
	newStatus, err := a.status.Promote()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.updatedAt = now
	return nil
}

// Deliver completes the Current assignment at the given time, stamping the
// actual delivery timestamp. Terminal.
func (a *Assignment) Deliver(now time.Time) error {
	newStatus, err := a.status.Deliver()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.updatedAt = now
	a.actualDelivery = &now
	return nil
}

// setID sets the assignment's unique identifier with validation.
func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setOrderID sets the order back-reference with validation.
func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	a.orderID = orderID
	return nil
}

// setWorkerID sets the worker back-reference with validation.
func (a *Assignment) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	a.workerID = workerID
	return nil
}
