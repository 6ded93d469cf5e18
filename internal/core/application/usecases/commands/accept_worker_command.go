package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptWorkerCommandIsNotConstructed = errors.New(
	"AcceptWorkerCommand must be created via NewAcceptWorkerCommand constructor",
)

// AcceptWorkerCommand approves a worker's registration, moving them from
// NotVerified to Inactive. The worker then starts their first day themselves.
type AcceptWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptWorkerCommand creates a command to approve the given registration.
func NewAcceptWorkerCommand(workerID kernel.UUID) (AcceptWorkerCommand, error) {
	command := AcceptWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkerID(workerID); err != nil {
		return AcceptWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAcceptWorkerCommandIsNotConstructed)
}

// WorkerID returns the worker ID from the command.
func (c AcceptWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *AcceptWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
