package commands

import (
	"context"
	"log/slog"
)

// StartDayCommandHandler flips a worker to Available and sweeps the backlog
// so waiting orders reach the fresh capacity right away.
type StartDayCommandHandler struct {
	uowFactory WorkerUoWFactory
	sweeper    BacklogSweeper
	logger     *slog.Logger
}

// NewStartDayCommandHandler creates a handler for starting a worker's day.
func NewStartDayCommandHandler(
	uowFactory WorkerUoWFactory,
	sweeper BacklogSweeper,
	logger *slog.Logger,
) StartDayCommandHandler {
	return StartDayCommandHandler{
		uowFactory: uowFactory,
		sweeper:    sweeper,
		logger:     logger.With("component", "start_day"),
	}
}

// Handle moves the worker to Available, clearing any capacity hold, and
// triggers a backlog sweep once the flip is committed. A sweep failure is
// logged but never fails the day start.
func (h StartDayCommandHandler) Handle(ctx context.Context, command StartDayCommand) error {
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

	wrk, err := workerRepo.GetForUpdate(ctx, command.WorkerID())
	if err != nil {
		return err
	}
	if err = wrk.StartDay(); err != nil {
		return err
	}
	if err = workerRepo.Update(ctx, wrk); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.sweeper.Handle(ctx, NewReprocessBacklogCommand()); err != nil {
		h.logger.Error("backlog sweep after day start failed", "worker_id", command.WorkerID().String(), "error", err.Error())
	}

	return nil
}
