package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrReprocessBacklogCommandIsNotConstructed = errors.New(
	"ReprocessBacklogCommand must be created via NewReprocessBacklogCommand constructor",
)

// ReprocessBacklogCommand triggers one sweep over orders awaiting assignment.
// Each backlog order gets its own assignment attempt in its own transaction;
// capacity refusals are expected and swallowed. The sweep runs after a worker
// starts their day, after a delivery frees a slot, and on the cron schedule.
type ReprocessBacklogCommand struct {
	guard guard.ConstructorGuard
}

// NewReprocessBacklogCommand creates a command to trigger a backlog sweep.
func NewReprocessBacklogCommand() ReprocessBacklogCommand {
	return ReprocessBacklogCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReprocessBacklogCommandIsNotConstructed if validation fails.
func (c *ReprocessBacklogCommand) Validate() error {
	return c.guard.Validate(ErrReprocessBacklogCommandIsNotConstructed)
}
