package queries

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkerBoardQueryHandler retrieves the worker board from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// active count is computed in the database, not by loading aggregates.
type GetWorkerBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerBoardQueryHandler creates a handler for worker board queries.
// Requires a GORM database connection for query execution.
func NewGetWorkerBoardQueryHandler(db *gorm.DB) GetWorkerBoardQueryHandler {
	return GetWorkerBoardQueryHandler{db: db}
}

// Handle executes the query to retrieve the worker board.
// Returns one row per worker sorted by name, with the number of Pending and
// Current assignments counted against the workload cap.
func (h GetWorkerBoardQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerBoardQuery,
) ([]GetWorkerBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetWorkerBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.name,
			w.status,
			w.capacity_hold,
			COUNT(a.id) AS active_assignments
		FROM workers w
		LEFT JOIN assignments a
			ON a.worker_id = w.id AND a.status IN (?, ?)
		GROUP BY w.id, w.name, w.status, w.capacity_hold
		ORDER BY w.name
	`, int(assignment.Pending), int(assignment.Current)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetWorkerBoardQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&row.Name,
			&status,
			&row.CapacityHold,
			&row.ActiveAssignments,
		)
		if err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = workerID
		row.Status = worker.Status(status)

		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
