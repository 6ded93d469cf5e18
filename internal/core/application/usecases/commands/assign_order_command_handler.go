package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// AssignOrderCommandHandler orchestrates the order assignment process.
// Locks the chosen worker's row for the whole sequence so that concurrent
// assignments to the same worker serialize, then delegates the capacity
// decision to the WorkerPicker domain service.
//
// A NoCapacityError can arrive with committed side effects: a worker who was
// found at the cap is flipped Unavailable before the refusal is returned, so
// the next attempt goes to somebody else.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command.
//
// Sequence: lock the order row, reject if it is not assignable or already
// carries an active assignment, lock the first Available worker, load the
// worker's active assignments, and let the picker decide. On success the new
// assignment, the order and (when the cap was just filled or a queued
// assignment was promoted) the worker and promoted order are persisted in
// one transaction.
//
// The order lock serializes concurrent assignments of the same order: the
// loser re-reads the committed Assigned status and is refused, so an order
// gains at most one active assignment even when the cron sweep races an
// inline one.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workerRepo := uow.WorkerRepository()
	orderRepo := uow.OrderRepository()
	assignmentRepo := uow.AssignmentRepository()

	ord, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if !ord.Status().IsAssignable() {
		return errs.NewIllegalStateError("order", ord.Status().String())
	}

	// An assignable status must mean no active assignment exists; refuse
	// rather than create a second one.
	if _, err = assignmentRepo.GetActiveByOrder(ctx, ord.ID()); err == nil {
		return errs.NewIllegalStateError("order", "already has an active assignment")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	wrk, err := workerRepo.GetFirstAvailable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewNoCapacityError("no available workers")
	}
	if err != nil {
		return err
	}

	active, err := assignmentRepo.GetActiveByWorker(ctx, wrk.ID())
	if err != nil {
		return err
	}

	result, pickErr := services.NewWorkerPicker().Pick(ord, wrk, active, time.Now().UTC())
	if errors.Is(pickErr, errs.ErrNoCapacity) {
		// The flip to Unavailable must stick even though the order was refused.
		if err = workerRepo.Update(ctx, wrk); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return pickErr
	}
	if pickErr != nil {
		return pickErr
	}

	if err = assignmentRepo.Add(ctx, result.Created); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}
	if result.Promoted != nil {
		promotedOrder, err := orderRepo.Get(ctx, result.Promoted.OrderID())
		if err != nil {
			return err
		}
		if err = promotedOrder.StartDelivery(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, promotedOrder); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, result.Promoted); err != nil {
			return err
		}
	}
	if err = workerRepo.Update(ctx, wrk); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
