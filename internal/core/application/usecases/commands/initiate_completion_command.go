package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrInitiateCompletionCommandIsNotConstructed = errors.New(
	"InitiateCompletionCommand must be created via NewInitiateCompletionCommand constructor",
)

// InitiateCompletionCommand starts the delivery handover for a worker's
// current assignment: a one-time code is issued and sent to the order
// recipient, who reads it back to the worker at the door.
type InitiateCompletionCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewInitiateCompletionCommand creates a command to start the handover for
// the given worker's current assignment.
func NewInitiateCompletionCommand(workerID kernel.UUID) (InitiateCompletionCommand, error) {
	command := InitiateCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkerID(workerID); err != nil {
		return InitiateCompletionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiateCompletionCommand) Validate() error {
	return c.guard.Validate(ErrInitiateCompletionCommandIsNotConstructed)
}

// WorkerID returns the worker ID from the command.
func (c InitiateCompletionCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *InitiateCompletionCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
