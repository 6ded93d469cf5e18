package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRejectWorkerCommandIsNotConstructed = errors.New(
	"RejectWorkerCommand must be created via NewRejectWorkerCommand constructor",
)

// RejectWorkerCommand declines a worker's registration and removes the
// record. Rejection is terminal: the applicant registers again from scratch
// if they want back in.
type RejectWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectWorkerCommand creates a command to decline the given registration.
func NewRejectWorkerCommand(workerID kernel.UUID) (RejectWorkerCommand, error) {
	command := RejectWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkerID(workerID); err != nil {
		return RejectWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRejectWorkerCommandIsNotConstructed)
}

// WorkerID returns the worker ID from the command.
func (c RejectWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *RejectWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
