package assignment_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingAssignment(t *testing.T, at time.Time) *assignment.Assignment {
	t.Helper()

	a, err := assignment.NewAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		assignment.Pending, at, at.Add(30*time.Minute),
	)
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	now := time.Now()

	t.Run("should create current assignment", func(t *testing.T) {
		orderID := kernel.NewUUID()
		workerID := kernel.NewUUID()

		a, err := assignment.NewAssignment(kernel.NewUUID(), orderID, workerID, assignment.Current, now, now.Add(30*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, assignment.Current, a.Status())
		assert.True(t, a.OrderID().IsEqual(orderID))
		assert.True(t, a.WorkerID().IsEqual(workerID))
		assert.Equal(t, now, a.AssignedAt())
		assert.Equal(t, now, a.UpdatedAt())
		assert.Nil(t, a.ActualDelivery())
		assert.True(t, a.IsActive())
	})

	t.Run("should reject Delivered as initial status", func(t *testing.T) {
		_, err := assignment.NewAssignment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			assignment.Delivered, now, now,
		)
		require.Error(t, err)
	})

	t.Run("should reject zero-value references", func(t *testing.T) {
		var zero kernel.UUID
		_, err := assignment.NewAssignment(kernel.NewUUID(), zero, kernel.NewUUID(), assignment.Pending, now, now)
		require.Error(t, err)
	})
}

func TestAssignment_Promote(t *testing.T) {
	now := time.Now()

	t.Run("promotes pending to current", func(t *testing.T) {
		a := newPendingAssignment(t, now)
		later := now.Add(time.Minute)

		require.NoError(t, a.Promote(later))

		assert.Equal(t, assignment.Current, a.Status())
		assert.Equal(t, later, a.UpdatedAt())
	})

	t.Run("cannot promote current", func(t *testing.T) {
		a := newPendingAssignment(t, now)
		require.NoError(t, a.Promote(now))

		require.Error(t, a.Promote(now))
	})
}

func TestAssignment_Deliver(t *testing.T) {
	now := time.Now()

	t.Run("delivers current assignment", func(t *testing.T) {
		a := newPendingAssignment(t, now)
		require.NoError(t, a.Promote(now))
		deliveredAt := now.Add(20 * time.Minute)

		require.NoError(t, a.Deliver(deliveredAt))

		assert.Equal(t, assignment.Delivered, a.Status())
		assert.False(t, a.IsActive())
		require.NotNil(t, a.ActualDelivery())
		assert.Equal(t, deliveredAt, *a.ActualDelivery())
	})

	t.Run("cannot deliver pending assignment", func(t *testing.T) {
		a := newPendingAssignment(t, now)

		require.Error(t, a.Deliver(now))
		assert.Equal(t, assignment.Pending, a.Status())
	})

	t.Run("cannot deliver twice", func(t *testing.T) {
		a := newPendingAssignment(t, now)
		require.NoError(t, a.Promote(now))
		require.NoError(t, a.Deliver(now))

		require.Error(t, a.Deliver(now))
	})
}

func TestRestoreAssignment(t *testing.T) {
	now := time.Now()
	delivered := now.Add(15 * time.Minute)

	a, err := assignment.RestoreAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		assignment.Delivered, now, delivered, now.Add(30*time.Minute), &delivered,
	)

	require.NoError(t, err)
	assert.Equal(t, assignment.Delivered, a.Status())
	require.NotNil(t, a.ActualDelivery())
	assert.Equal(t, delivered, *a.ActualDelivery())
}

func TestAssignment_Validate(t *testing.T) {
	var a assignment.Assignment
	require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
}
