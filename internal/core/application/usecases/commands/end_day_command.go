package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrEndDayCommandIsNotConstructed = errors.New(
	"EndDayCommand must be created via NewEndDayCommand constructor",
)

// EndDayCommand takes a worker off shift. Active assignments stay with the
// worker; they just stop receiving new ones.
type EndDayCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndDayCommand creates a command to take the given worker off shift.
func NewEndDayCommand(workerID kernel.UUID) (EndDayCommand, error) {
	command := EndDayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkerID(workerID); err != nil {
		return EndDayCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EndDayCommand) Validate() error {
	return c.guard.Validate(ErrEndDayCommandIsNotConstructed)
}

// WorkerID returns the worker ID from the command.
func (c EndDayCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *EndDayCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
