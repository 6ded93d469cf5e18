package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"

	"github.com/stretchr/testify/require"
)

func testAvailableWorker(t *testing.T) *worker.Worker {
	t.Helper()

	vehicle, err := worker.NewVehicle(worker.VehicleScooter, "SC-042")
	require.NoError(t, err)
	w, err := worker.NewWorker(kernel.NewUUID(), "Jordan", "+15550199", "jordan@example.com", vehicle)
	require.NoError(t, err)
	require.NoError(t, w.Accept())
	require.NoError(t, w.StartDay())
	return w
}

func testPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "Casey", "casey@example.com", "7 Dock Street")
	require.NoError(t, err)
	return o
}

func testActiveAssignments(t *testing.T, w *worker.Worker, n int) []*assignment.Assignment {
	t.Helper()

	now := time.Now()
	active := make([]*assignment.Assignment, 0, n)
	for i := 0; i < n; i++ {
		status := assignment.Pending
		if i == 0 {
			status = assignment.Current
		}
		a, err := assignment.NewAssignment(
			kernel.NewUUID(), kernel.NewUUID(), w.ID(),
			status, now, now.Add(time.Hour),
		)
		require.NoError(t, err)
		active = append(active, a)
	}
	return active
}

func testCurrentAssignment(t *testing.T, w *worker.Worker, orderID kernel.UUID) *assignment.Assignment {
	t.Helper()

	now := time.Now()
	a, err := assignment.NewAssignment(kernel.NewUUID(), orderID, w.ID(), assignment.Current, now, now.Add(time.Hour))
	require.NoError(t, err)
	return a
}
