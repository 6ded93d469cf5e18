package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// backlogBatchSize bounds one sweep pass. Anything left over is picked up by
// the next pass.
const backlogBatchSize = 50

// BacklogSweeper triggers a backlog sweep. Implemented by
// ReprocessBacklogCommandHandler; other handlers depend on this interface so
// the sweep can be faked in tests.
type BacklogSweeper interface {
	Handle(ctx context.Context, command ReprocessBacklogCommand) error
}

// ReprocessBacklogCommandHandler sweeps orders awaiting assignment and
// retries each one. The sweep is idempotent per order: an order that gets
// assigned leaves the backlog, an order nobody can take stays for the next
// pass.
//
// Each order is attempted in its own transaction, so one failure never
// unwinds another order's assignment.
type ReprocessBacklogCommandHandler struct {
	uowFactory UoWFactory
	assign     AssignOrderCommandHandler
	logger     *slog.Logger
}

// NewReprocessBacklogCommandHandler creates a handler for backlog sweeps.
func NewReprocessBacklogCommandHandler(
	uowFactory UoWFactory,
	assign AssignOrderCommandHandler,
	logger *slog.Logger,
) ReprocessBacklogCommandHandler {
	return ReprocessBacklogCommandHandler{
		uowFactory: uowFactory,
		assign:     assign,
		logger:     logger.With("component", "backlog_sweep"),
	}
}

// Handle runs one sweep pass.
//
// Reads a bounded batch of backlog orders, then attempts assignment for each
// in its own transaction. NoCapacityError and IllegalStateError are logged at
// debug and swallowed; any other failure is logged and the sweep moves on.
// The pass itself only fails when the backlog cannot be read.
func (h ReprocessBacklogCommandHandler) Handle(ctx context.Context, command ReprocessBacklogCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	orderIDs, err := h.loadBacklog(ctx)
	if err != nil {
		return err
	}

	for _, orderID := range orderIDs {
		assignCommand, err := NewAssignOrderCommand(orderID)
		if err != nil {
			return err
		}

		err = h.assign.Handle(ctx, assignCommand)
		switch {
		case err == nil:
			h.logger.Info("backlog order assigned", "order_id", orderID.String())
		case errors.Is(err, errs.ErrNoCapacity), errors.Is(err, errs.ErrIllegalState):
			h.logger.Debug("backlog order skipped", "order_id", orderID.String(), "reason", err.Error())
		default:
			h.logger.Error("backlog order failed", "order_id", orderID.String(), "error", err.Error())
		}
	}

	return nil
}

// loadBacklog reads one batch of backlog order IDs in a short read-only
// transaction. IDs, not aggregates: every assignment attempt re-reads its
// order under its own transaction.
func (h ReprocessBacklogCommandHandler) loadBacklog(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	backlog, err := uow.OrderRepository().GetBacklog(ctx, backlogBatchSize)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(backlog))
	for _, ord := range backlog {
		orderIDs = append(orderIDs, ord.ID())
	}
	return orderIDs, nil
}
