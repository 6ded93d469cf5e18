package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// InitiateCompletionCommandHandler issues a one-time completion code for a
// worker's current assignment and dispatches it to the order recipient.
//
// If the worker has queued work but no Current assignment (the previous one
// just finished), the oldest queued assignment is promoted first, so the
// handover always targets a Current assignment.
type InitiateCompletionCommandHandler struct {
	uowFactory UoWFactory
	codes      CompletionCodes
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewInitiateCompletionCommandHandler creates a handler for starting delivery
// handovers.
func NewInitiateCompletionCommandHandler(
	uowFactory UoWFactory,
	codes CompletionCodes,
	notifier ports.Notifier,
	logger *slog.Logger,
) InitiateCompletionCommandHandler {
	return InitiateCompletionCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
		logger:     logger.With("component", "initiate_completion"),
	}
}

// Handle finds the worker's Current assignment (promoting the oldest queued
// one when necessary), commits any promotion, then issues the code and sends
// it to the recipient. A notification failure is logged and swallowed: the
// code is already in the cache, and the worker can initiate again for a
// fresh one.
func (h InitiateCompletionCommandHandler) Handle(ctx context.Context, command InitiateCompletionCommand) error {
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

	wrk, err := uow.WorkerRepository().GetForUpdate(ctx, command.WorkerID())
	if err != nil {
		return err
	}

	current, err := h.currentAssignment(ctx, uow, wrk.ID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, current.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	code, err := h.codes.Issue(ctx, current.ID())
	if err != nil {
		return err
	}

	notification := ports.Notification{
		Kind:      ports.NotificationCompletionCode,
		Recipient: ord.RecipientEmail(),
		Code:      code,
	}
	if err = h.notifier.Send(ctx, notification); err != nil {
		h.logger.Error("completion code notification failed",
			"assignment_id", current.ID().String(),
			"error", err.Error(),
		)
	}

	return nil
}

// currentAssignment returns the worker's Current assignment, promoting the
// oldest queued one when the worker has active work but nothing Current.
// Workers without active work yield an IllegalStateError.
func (h InitiateCompletionCommandHandler) currentAssignment(
	ctx context.Context,
	uow UoW,
	workerID kernel.UUID,
) (*assignment.Assignment, error) {
	assignmentRepo := uow.AssignmentRepository()

	current, err := assignmentRepo.GetCurrentByWorker(ctx, workerID)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	active, err := assignmentRepo.GetActiveByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, errs.NewIllegalStateError("worker", "has no active assignment")
	}

	oldest := active[0]
	if err = oldest.Promote(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err = assignmentRepo.Update(ctx, oldest); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	promotedOrder, err := orderRepo.Get(ctx, oldest.OrderID())
	if err != nil {
		return nil, err
	}
	if err = promotedOrder.StartDelivery(); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, promotedOrder); err != nil {
		return nil, err
	}

	return oldest, nil
}
