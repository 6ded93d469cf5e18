package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
	ErrCodeIsRequired = errors.New("code is required")
)

// CompleteDeliveryCommand finishes a worker's current assignment using the
// one-time code the recipient read back at the door.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	code     string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to finish the given worker's
// current assignment with the supplied code.
func NewCompleteDeliveryCommand(workerID kernel.UUID, code string) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkerID(workerID),
		command.setCode(code),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// WorkerID returns the worker ID from the command.
func (c CompleteDeliveryCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Code returns the one-time code from the command.
func (c CompleteDeliveryCommand) Code() string {
	return c.code
}

func (c *CompleteDeliveryCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *CompleteDeliveryCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}
