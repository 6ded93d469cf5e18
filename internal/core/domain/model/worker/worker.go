package worker

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for worker operations.
var (
	// ErrNameIsRequired is returned when attempting to create a worker without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a worker without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrEmailIsRequired is returned when attempting to create a worker without an email address.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrWorkerIsNotConstructed is returned when using an improperly initialized Worker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")
)

// Worker represents a delivery worker ("executive") in the system.
// It is an aggregate root that manages worker identity, contact details,
// the vehicle descriptor, and the availability state machine.
//
// Key responsibilities:
//   - Managing worker identity (ID, name, contact details, vehicle)
//   - Driving the availability state machine (NotVerified, Inactive, Available, Unavailable)
//   - Distinguishing capacity-forced unavailability from a manual opt-out
//
// Business rules:
//   - A worker starts in NotVerified and never re-enters it
//   - Only an admin accept moves a worker out of NotVerified (to Inactive)
//   - A NotVerified worker cannot start or end a day, or opt in/out of work
//   - The capacityHold flag is set only when the workload cap forces
//     Unavailable; a manual opt-out always clears it, so a worker who opted
//     out is never auto-reactivated when capacity frees up
type Worker struct {
	// id uniquely identifies the worker
	id kernel.UUID
	// name is the human-readable name of the worker
	name string
	// phone is the worker's contact phone number
	phone string
	// email is the worker's contact email address
	email string
	// vehicle describes the worker's delivery vehicle
	vehicle Vehicle
	// status is the current availability state
	status Status
	// capacityHold is true iff the workload cap, not the worker, forced Unavailable
	capacityHold bool
	// guard ensures the worker was properly constructed
	guard guard.ConstructorGuard
}

// NewWorker creates a new Worker with the specified parameters.
// This is the only way to create a fresh Worker instance; it represents a
// registration and therefore starts in NotVerified with no capacity hold.
//
// All parameters are validated; validation errors for multiple fields are
// aggregated into a single returned error.
func NewWorker(id kernel.UUID, name, phone, email string, vehicle Vehicle) (*Worker, error) {
	w := &Worker{
		status: NotVerified,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setPhone(phone),
		w.setEmail(email),
		w.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker reconstructs a Worker aggregate from persistent storage.
// Unlike NewWorker, which always starts workers in NotVerified, this
// constructor restores a worker to its previously persisted state, including
// the availability status and capacity-hold flag. The restored worker behaves
// identically to one created through normal domain operations.
func RestoreWorker(
	id kernel.UUID,
	name, phone, email string,
	vehicle Vehicle,
	status Status,
	capacityHold bool,
) (*Worker, error) {
	w := &Worker{
		capacityHold: capacityHold,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setPhone(phone),
		w.setEmail(email),
		w.setVehicle(vehicle),
		w.setStatus(status),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// IsEqual compares two workers for equality based on their unique identifiers.
func (w *Worker) IsEqual(other *Worker) bool {
	if other == nil {
		return false
	}
	return w.id.IsEqual(other.id)
}

// Validate checks if the Worker was properly constructed via NewWorker or
// RestoreWorker. The zero value of Worker is invalid and fails this check.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// ID returns the unique identifier of the worker.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Name returns the human-readable name of the worker.
func (w *Worker) Name() string {
	return w.name
}

// Phone returns the worker's contact phone number.
func (w *Worker) Phone() string {
	return w.phone
}

// Email returns the worker's contact email address.
func (w *Worker) Email() string {
	return w.email
}

// Vehicle returns the worker's vehicle descriptor.
func (w *Worker) Vehicle() Vehicle {
	return w.vehicle
}

// Status returns the current availability status.
func (w *Worker) Status() Status {
	return w.status
}

// CapacityHold reports whether the worker's Unavailable status was forced by
// the workload cap rather than requested by the worker.
func (w *Worker) CapacityHold() bool {
	return w.capacityHold
}

// IsAvailable reports whether the worker can be selected for new assignments.
func (w *Worker) IsAvailable() bool {
	return w.status == Available
}

// Accept verifies a registered worker: NotVerified -> Inactive.
// The worker must separately start their day to become assignable.
// Returns an IllegalStateError if the worker is not in NotVerified.
func (w *Worker) Accept() error {
	if w.status != NotVerified {
		return errs.NewIllegalStateError("worker", w.status.String())
	}

	w.status = Inactive
	return nil
}

// StartDay puts the worker on duty: any verified state -> Available.
// Clears any capacity hold from a previous day.
// Returns an IllegalStateError for NotVerified workers.
func (w *Worker) StartDay() error {
	if w.status == NotVerified {
		return errs.NewIllegalStateError("worker", w.status.String())
	}

	w.status = Available
	w.capacityHold = false
	return nil
}

// EndDay takes the worker off duty: any verified state -> Inactive.
// Returns an IllegalStateError for NotVerified workers.
func (w *Worker) EndDay() error {
	if w.status == NotVerified {
		return errs.NewIllegalStateError("worker", w.status.String())
	}

	w.status = Inactive
	w.capacityHold = false
	return nil
}

// MarkUnavailable records a manual opt-out from new work without ending the
// day: any verified state -> Unavailable. The capacity hold is cleared so a
// manual opt-out is never undone automatically when capacity frees up.
// Returns an IllegalStateError for NotVerified workers.
func (w *Worker) MarkUnavailable() error {
	if w.status == NotVerified {
		return errs.NewIllegalStateError("worker", w.status.String())
	}

	w.status = Unavailable
	w.capacityHold = false
	return nil
}

// HoldForCapacity flips the worker to Unavailable because the workload cap
// was reached, remembering that the cap (not the worker) caused it.
// Idempotent for workers already held. Returns an IllegalStateError for
// NotVerified workers; a manual Unavailable is left untouched.
func (w *Worker) HoldForCapacity() error {
	if w.status == NotVerified {
		return errs.NewIllegalStateError("worker", w.status.String())
	}
	if w.status == Unavailable && !w.capacityHold {
		// Manual opt-out wins over the cap.
		return nil
	}

	w.status = Unavailable
	w.capacityHold = true
	return nil
}

// ReleaseCapacityHold flips a capacity-held worker back to Available after a
// delivery frees up a slot. Returns true if the worker was re-activated;
// workers who are not capacity-held (including manual opt-outs) are left
// untouched and false is returned.
func (w *Worker) ReleaseCapacityHold() bool {
	if w.status != Unavailable || !w.capacityHold {
		return false
	}

	w.status = Available
	w.capacityHold = false
	return true
}

// setID sets the worker's unique identifier with validation.
func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	w.id = id
	return nil
}

// setName sets the worker's name with validation.
func (w *Worker) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	w.name = name
	return nil
}

// setPhone sets the worker's phone number with validation.
func (w *Worker) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	w.phone = phone
	return nil
}

// setEmail sets the worker's email address with validation.
func (w *Worker) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	w.email = email
	return nil
}

// setVehicle sets the worker's vehicle descriptor with validation.
func (w *Worker) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Type().Validate(); err != nil {
		return err
	}

	w.vehicle = vehicle
	return nil
}

// setStatus sets the worker's status with validation.
// Used during restoration from persistent state.
func (w *Worker) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	w.status = status
	return nil
}
