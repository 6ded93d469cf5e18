package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByWorker retrieves the worker's Pending and Current
	// assignments, oldest first. The slice length is the worker's load
	// against the workload cap.
	GetActiveByWorker(ctx context.Context, workerID kernel.UUID) ([]*assignment.Assignment, error)

	// GetCurrentByWorker retrieves the worker's single Current assignment,
	// or an ObjectNotFoundError when the worker has none.
	GetCurrentByWorker(ctx context.Context, workerID kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByOrder retrieves the order's non-terminal assignment, or an
	// ObjectNotFoundError when none exists.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)
}
