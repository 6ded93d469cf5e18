package commands

import (
	"context"
)

// EndDayCommandHandler flips a worker to Inactive at the end of their shift.
type EndDayCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewEndDayCommandHandler creates a handler for ending a worker's day.
func NewEndDayCommandHandler(uowFactory WorkerUoWFactory) EndDayCommandHandler {
	return EndDayCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the worker to Inactive, clearing any capacity hold.
func (h EndDayCommandHandler) Handle(ctx context.Context, command EndDayCommand) error {
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
	if err = wrk.EndDay(); err != nil {
		return err
	}
	if err = workerRepo.Update(ctx, wrk); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
