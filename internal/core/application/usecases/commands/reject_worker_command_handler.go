package commands

import (
	"context"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"
)

// RejectWorkerCommandHandler declines worker registrations.
type RejectWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewRejectWorkerCommandHandler creates a handler for registration rejection.
func NewRejectWorkerCommandHandler(uowFactory WorkerUoWFactory) RejectWorkerCommandHandler {
	return RejectWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes a NotVerified worker's record. Rejection is the only path
// that hard-deletes a worker; anybody past verification yields an
// IllegalStateError instead.
func (h RejectWorkerCommandHandler) Handle(ctx context.Context, command RejectWorkerCommand) error {
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
	if wrk.Status() != worker.NotVerified {
		return errs.NewIllegalStateError("worker", wrk.Status().String())
	}
	if err = workerRepo.Delete(ctx, wrk.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
