// Package ports defines repository and gateway interfaces for the dispatch
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates.
type WorkerRepository interface {
	// Add persists a new worker aggregate to storage.
	// The worker must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Update persists changes to an existing worker aggregate.
	// The worker must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetForUpdate retrieves a worker aggregate with its row locked until the
	// surrounding transaction ends. Used wherever the workload cap is checked
	// so that concurrent assignments to the same worker serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetFirstAvailable retrieves one Available worker with its row locked,
	// or an ObjectNotFoundError when nobody is on shift.
	GetFirstAvailable(ctx context.Context) (*worker.Worker, error)

	// Delete removes a worker record permanently. Only rejected registrations
	// are deleted; accepted workers are deactivated instead.
	Delete(ctx context.Context, id kernel.UUID) error
}
