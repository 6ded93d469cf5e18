// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetWorkerBoardQueryIsNotConstructed = errors.New(
		"GetWorkerBoardQuery must be created via NewGetWorkerBoardQuery constructor",
	)
)

// GetWorkerBoardQuery retrieves the dispatcher's worker board: every worker
// with their availability and current workload.
//
// Example:
//
//	query := NewGetWorkerBoardQuery()
//	handler := NewGetWorkerBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve worker board: %w", err)
//	}
//
//	for _, row := range board {
//	    fmt.Printf("%s: %s, %d active\n", row.Name, row.Status, row.ActiveAssignments)
//	}
type GetWorkerBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkerBoardQuery creates a query to retrieve the worker board.
// This is a parameterless query that fetches every worker.
func NewGetWorkerBoardQuery() GetWorkerBoardQuery {
	return GetWorkerBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkerBoardQueryIsNotConstructed if validation fails.
func (q GetWorkerBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerBoardQueryIsNotConstructed)
}

// GetWorkerBoardQueryResponse represents one worker on the board.
type GetWorkerBoardQueryResponse struct {
	ID                kernel.UUID
	Name              string
	Status            worker.Status
	CapacityHold      bool
	ActiveAssignments int
}
