package services

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"
)

const (
	// MaxActiveAssignments is the workload cap: a worker may hold at most
	// this many Pending plus Current assignments at once.
	MaxActiveAssignments = 3

	// deliveryWindow is the time allotted per queued assignment when
	// estimating arrival.
	deliveryWindow = 45 * time.Minute
)

// WorkerPicker is a domain service that assigns an order to a worker while
// enforcing the workload cap.
//
// Business rules:
//   - Only Available workers take new assignments
//   - A worker at MaxActiveAssignments is flipped Unavailable with a capacity
//     hold, and the assignment is refused
//   - The new assignment is Current only when the worker holds no active
//     assignments at all; otherwise it queues as Pending, and when the queue
//     has no Current the oldest Pending is promoted first
//   - When the new assignment fills the last slot, the worker is held at the
//     same time the order is accepted
type WorkerPicker struct{}

// NewWorkerPicker creates a new WorkerPicker instance.
func NewWorkerPicker() WorkerPicker {
	return WorkerPicker{}
}

// PickResult is the outcome of a successful Pick. Created is the new
// assignment. Promoted, when non-nil, is the worker's oldest queued
// assignment that moved to Current during this pass; callers must persist it
// and move its order along too.
type PickResult struct {
	Created  *assignment.Assignment
	Promoted *assignment.Assignment
}

// Pick assigns the order to the worker, given the worker's active assignments
// oldest first.
//
// On success the order is moved to Assigned (and OutForDelivery when the new
// assignment starts out Current). All mutations happen in memory; callers
// persist worker, order and assignments in one transaction.
//
// When the worker is already at the cap, the worker is flipped Unavailable
// with a capacity hold and a NoCapacityError is returned. The flip is a real
// state change the caller must persist even though the assignment failed.
func (p WorkerPicker) Pick(
	ord *order.Order,
	wrk *worker.Worker,
	active []*assignment.Assignment,
	now time.Time,
) (PickResult, error) {
	if err := ord.Validate(); err != nil {
		return PickResult{}, err
	}
	if err := wrk.Validate(); err != nil {
		return PickResult{}, err
	}

	if !wrk.IsAvailable() {
		return PickResult{}, errs.NewIllegalStateError("worker", wrk.Status().String())
	}

	if len(active) >= MaxActiveAssignments {
		if err := wrk.HoldForCapacity(); err != nil {
			return PickResult{}, err
		}
		return PickResult{}, errs.NewNoCapacityError("worker is at the workload cap")
	}

	var result PickResult

	status := assignment.Pending
	if len(active) == 0 {
		status = assignment.Current
	} else if oldest := active[0]; !hasCurrent(active) {
		// The queue lost its head at some point; the oldest waiter goes first.
		if err := oldest.Promote(now); err != nil {
			return PickResult{}, err
		}
		result.Promoted = oldest
	}

	eta := now.Add(time.Duration(len(active)+1) * deliveryWindow)
	created, err := assignment.NewAssignment(kernel.NewUUID(), ord.ID(), wrk.ID(), status, now, eta)
	if err != nil {
		return PickResult{}, err
	}
	result.Created = created

	if err := ord.Assign(); err != nil {
		return PickResult{}, err
	}
	if status == assignment.Current {
		if err := ord.StartDelivery(); err != nil {
			return PickResult{}, err
		}
	}

	if len(active)+1 >= MaxActiveAssignments {
		if err := wrk.HoldForCapacity(); err != nil {
			return PickResult{}, err
		}
	}

	return result, nil
}

// hasCurrent reports whether any assignment in the slice is Current.
func hasCurrent(active []*assignment.Assignment) bool {
	for _, a := range active {
		if a.Status() == assignment.Current {
			return true
		}
	}
	return false
}
