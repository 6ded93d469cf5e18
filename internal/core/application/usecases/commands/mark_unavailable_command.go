package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkUnavailableCommandIsNotConstructed = errors.New(
	"MarkUnavailableCommand must be created via NewMarkUnavailableCommand constructor",
)

// MarkUnavailableCommand records a worker's own decision to stop taking
// assignments. Unlike a capacity hold, a manual opt-out is never lifted by
// the engine; only the worker starting a new day brings them back.
type MarkUnavailableCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkUnavailableCommand creates a command for a manual opt-out.
func NewMarkUnavailableCommand(workerID kernel.UUID) (MarkUnavailableCommand, error) {
	command := MarkUnavailableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkerID(workerID); err != nil {
		return MarkUnavailableCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkUnavailableCommand) Validate() error {
	return c.guard.Validate(ErrMarkUnavailableCommandIsNotConstructed)
}

// WorkerID returns the worker ID from the command.
func (c MarkUnavailableCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *MarkUnavailableCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
