package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler finishes a worker's current assignment once
// the recipient's one-time code checks out.
//
// A successful validation consumes the code, so a completion can never be
// replayed. A wrong code leaves both the assignment and the issued code
// untouched; the code simply expires if never matched.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	codes      CompletionCodes
	sweeper    BacklogSweeper
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	codes CompletionCodes,
	sweeper BacklogSweeper,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		sweeper:    sweeper,
		logger:     logger.With("component", "complete_delivery"),
	}
}

// Handle validates the code against the worker's Current assignment, then in
// one transaction marks the assignment and its order Delivered and lifts the
// worker's capacity hold if the cap caused their unavailability. A successful
// completion triggers a backlog sweep for the freed slot.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
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

	wrk, err := workerRepo.GetForUpdate(ctx, command.WorkerID())
	if err != nil {
		return err
	}

	current, err := assignmentRepo.GetCurrentByWorker(ctx, wrk.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewIllegalStateError("worker", "has no current assignment")
	}
	if err != nil {
		return err
	}

	if err = h.codes.Validate(ctx, current.ID(), command.Code()); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = current.Deliver(now); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, current); err != nil {
		return err
	}

	ord, err := orderRepo.Get(ctx, current.OrderID())
	if err != nil {
		return err
	}
	if err = ord.Deliver(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if wrk.ReleaseCapacityHold() {
		if err = workerRepo.Update(ctx, wrk); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Any residue for this assignment is stale after delivery.
	if err = h.codes.Invalidate(ctx, current.ID()); err != nil {
		h.logger.Warn("completion code cleanup failed", "assignment_id", current.ID().String(), "error", err.Error())
	}

	if err = h.sweeper.Handle(ctx, NewReprocessBacklogCommand()); err != nil {
		h.logger.Error("backlog sweep after completion failed", "worker_id", wrk.ID().String(), "error", err.Error())
	}

	return nil
}
