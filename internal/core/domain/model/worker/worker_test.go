package worker_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) *worker.Worker {
	t.Helper()

	vehicle, err := worker.NewVehicle(worker.VehicleScooter, "KA-01-1234")
	require.NoError(t, err)

	w, err := worker.NewWorker(kernel.NewUUID(), "Ravi Kumar", "+911234567890", "ravi@example.com", vehicle)
	require.NoError(t, err)
	return w
}

func acceptedWorker(t *testing.T) *worker.Worker {
	t.Helper()

	w := newTestWorker(t)
	require.NoError(t, w.Accept())
	return w
}

func TestNewWorker(t *testing.T) {
	t.Run("should create worker in NotVerified status", func(t *testing.T) {
		w := newTestWorker(t)

		assert.Equal(t, worker.NotVerified, w.Status())
		assert.False(t, w.CapacityHold())
		assert.False(t, w.IsAvailable())
		require.NoError(t, w.Validate())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		vehicle, _ := worker.NewVehicle(worker.VehicleBicycle, "")

		_, err := worker.NewWorker(kernel.NewUUID(), "", "", "", vehicle)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value worker is invalid", func(t *testing.T) {
		var w worker.Worker
		require.ErrorIs(t, w.Validate(), worker.ErrWorkerIsNotConstructed)
	})
}

func TestWorker_Accept(t *testing.T) {
	t.Run("should move NotVerified worker to Inactive", func(t *testing.T) {
		w := newTestWorker(t)

		require.NoError(t, w.Accept())
		assert.Equal(t, worker.Inactive, w.Status())
	})

	t.Run("should fail for already verified worker", func(t *testing.T) {
		w := acceptedWorker(t)

		err := w.Accept()

		require.ErrorIs(t, err, errs.ErrIllegalState)
		assert.Equal(t, worker.Inactive, w.Status())
	})
}

func TestWorker_DailyRoutine(t *testing.T) {
	t.Run("start day makes worker available", func(t *testing.T) {
		w := acceptedWorker(t)

		require.NoError(t, w.StartDay())

		assert.Equal(t, worker.Available, w.Status())
		assert.True(t, w.IsAvailable())
	})

	t.Run("start day clears stale capacity hold", func(t *testing.T) {
		w := acceptedWorker(t)
		require.NoError(t, w.StartDay())
		require.NoError(t, w.HoldForCapacity())
		require.True(t, w.CapacityHold())

		require.NoError(t, w.StartDay())

		assert.Equal(t, worker.Available, w.Status())
		assert.False(t, w.CapacityHold())
	})

	t.Run("end day makes worker inactive", func(t *testing.T) {
		w := acceptedWorker(t)
		require.NoError(t, w.StartDay())

		require.NoError(t, w.EndDay())

		assert.Equal(t, worker.Inactive, w.Status())
	})

	t.Run("not verified worker cannot start or end a day", func(t *testing.T) {
		w := newTestWorker(t)

		require.ErrorIs(t, w.StartDay(), errs.ErrIllegalState)
		require.ErrorIs(t, w.EndDay(), errs.ErrIllegalState)
		require.ErrorIs(t, w.MarkUnavailable(), errs.ErrIllegalState)
		assert.Equal(t, worker.NotVerified, w.Status())
	})
}

func TestWorker_CapacityHold(t *testing.T) {
	t.Run("hold flips available worker to unavailable", func(t *testing.T) {
		w := acceptedWorker(t)
		require.NoError(t, w.StartDay())

		require.NoError(t, w.HoldForCapacity())

		assert.Equal(t, worker.Unavailable, w.Status())
		assert.True(t, w.CapacityHold())
	})

	t.Run("release re-activates capacity-held worker", func(t *testing.T) {
		w := acceptedWorker(t)
		require.NoError(t, w.StartDay())
		require.NoError(t, w.HoldForCapacity())

		released := w.ReleaseCapacityHold()

		assert.True(t, released)
		assert.Equal(t, worker.Available, w.Status())
		assert.False(t, w.CapacityHold())
	})

	t.Run("release never undoes a manual opt-out", func(t *testing.T) {
		w := acceptedWorker(t)
		require.NoError(t, w.StartDay())
		require.NoError(t, w.MarkUnavailable())

		released := w.ReleaseCapacityHold()

		assert.False(t, released)
		assert.Equal(t, worker.Unavailable, w.Status())
	})

	t.Run("hold does not overwrite a manual opt-out", func(t *testing.T) {
		w := acceptedWorker(t)
		require.NoError(t, w.StartDay())
		require.NoError(t, w.MarkUnavailable())

		require.NoError(t, w.HoldForCapacity())

		assert.False(t, w.CapacityHold())
		assert.False(t, w.ReleaseCapacityHold())
	})
}

func TestRestoreWorker(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		vehicle, _ := worker.NewVehicle(worker.VehicleCar, "KA-05-9999")

		w, err := worker.RestoreWorker(id, "Asha", "+919876543210", "asha@example.com", vehicle, worker.Unavailable, true)

		require.NoError(t, err)
		assert.True(t, w.ID().IsEqual(id))
		assert.Equal(t, worker.Unavailable, w.Status())
		assert.True(t, w.CapacityHold())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		vehicle, _ := worker.NewVehicle(worker.VehicleBicycle, "")

		_, err := worker.RestoreWorker(kernel.NewUUID(), "Asha", "+919876543210", "asha@example.com", vehicle, worker.Unknown, false)

		require.Error(t, err)
	})
}

func TestNewVehicle(t *testing.T) {
	t.Run("bicycle needs no registration", func(t *testing.T) {
		v, err := worker.NewVehicle(worker.VehicleBicycle, "")

		require.NoError(t, err)
		assert.Equal(t, worker.VehicleBicycle, v.Type())
		assert.Empty(t, v.Registration())
	})

	t.Run("motorized vehicle requires registration", func(t *testing.T) {
		_, err := worker.NewVehicle(worker.VehicleCar, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unsupported type is rejected", func(t *testing.T) {
		_, err := worker.NewVehicle(worker.VehicleType("hoverboard"), "X")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
