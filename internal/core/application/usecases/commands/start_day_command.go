package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartDayCommandIsNotConstructed = errors.New(
	"StartDayCommand must be created via NewStartDayCommand constructor",
)

// StartDayCommand puts a worker on shift, making them eligible for new
// assignments and kicking off a backlog sweep.
type StartDayCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDayCommand creates a command to put the given worker on shift.
func NewStartDayCommand(workerID kernel.UUID) (StartDayCommand, error) {
	command := StartDayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkerID(workerID); err != nil {
		return StartDayCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDayCommand) Validate() error {
	return c.guard.Validate(ErrStartDayCommandIsNotConstructed)
}

// WorkerID returns the worker ID from the command.
func (c StartDayCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *StartDayCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
