package commands

import (
	"context"
)

// MarkUnavailableCommandHandler records a worker's manual opt-out.
type MarkUnavailableCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewMarkUnavailableCommandHandler creates a handler for manual opt-outs.
func NewMarkUnavailableCommandHandler(uowFactory WorkerUoWFactory) MarkUnavailableCommandHandler {
	return MarkUnavailableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the worker to Unavailable without a capacity hold, so a later
// freed slot does not re-activate them.
func (h MarkUnavailableCommandHandler) Handle(ctx context.Context, command MarkUnavailableCommand) error {
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
	if err = wrk.MarkUnavailable(); err != nil {
		return err
	}
	if err = workerRepo.Update(ctx, wrk); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
