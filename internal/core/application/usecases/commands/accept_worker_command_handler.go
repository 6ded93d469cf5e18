package commands

import (
	"context"
)

// AcceptWorkerCommandHandler approves worker registrations.
type AcceptWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewAcceptWorkerCommandHandler creates a handler for registration approval.
func NewAcceptWorkerCommandHandler(uowFactory WorkerUoWFactory) AcceptWorkerCommandHandler {
	return AcceptWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the worker from NotVerified to Inactive. Workers in any other
// state yield an IllegalStateError.
func (h AcceptWorkerCommandHandler) Handle(ctx context.Context, command AcceptWorkerCommand) error {
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
	if err = wrk.Accept(); err != nil {
		return err
	}
	if err = workerRepo.Update(ctx, wrk); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
