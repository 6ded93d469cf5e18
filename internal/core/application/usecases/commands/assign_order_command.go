package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand requests the assignment of one order to a worker.
// The engine picks the first available worker, enforces the workload cap and
// decides whether the new assignment starts Current or queues as Pending.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrNoCapacity) {
//	    // nobody can take the order right now; the sweep retries later
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign the given order.
func NewAssignOrderCommand(orderID kernel.UUID) (AssignOrderCommand, error) {
	command := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AssignOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
