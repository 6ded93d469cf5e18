package commands

import (
	"context"

	"dispatch/internal/core/domain/model/worker"
)

// RegisterWorkerCommandHandler handles the business logic for worker
// registration. Creates and persists new worker aggregates in NotVerified.
type RegisterWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewRegisterWorkerCommandHandler creates a handler for worker registration.
// Requires a WorkerUoWFactory for transactional persistence operations.
func NewRegisterWorkerCommandHandler(uowFactory WorkerUoWFactory) RegisterWorkerCommandHandler {
	return RegisterWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker registration command.
// Creates a new worker aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h RegisterWorkerCommandHandler) Handle(ctx context.Context, command RegisterWorkerCommand) error {
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

	vehicle, err := worker.NewVehicle(command.VehicleType(), command.Registration())
	if err != nil {
		return err
	}

	wrk, err := worker.NewWorker(command.WorkerID(), command.Name(), command.Phone(), command.Email(), vehicle)
	if err != nil {
		return err
	}

	if err = uow.WorkerRepository().Add(ctx, wrk); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
