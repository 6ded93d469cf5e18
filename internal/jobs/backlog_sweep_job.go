package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// BacklogSweepJob periodically retries assignment for orders still waiting
// for a worker. Inline sweeps after startDay and delivery completion cover
// the common cases; the job catches orders those sweeps missed.
type BacklogSweepJob struct {
	sweeper  commands.BacklogSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogSweepJob creates a job that sweeps the order backlog on the given
// cron schedule (with seconds field).
func NewBacklogSweepJob(sweeper commands.BacklogSweeper, schedule string, logger *slog.Logger) *BacklogSweepJob {
	return &BacklogSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_sweep_job"),
	}
}

// Start begins the periodic backlog sweep.
func (j *BacklogSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReprocessBacklogCommand()

		if err := j.sweeper.Handle(ctx, cmd); err != nil {
			// A fully booked fleet is an expected state, not a failure
			if !errors.Is(err, errs.ErrNoCapacity) {
				j.logger.ErrorContext(ctx, "Backlog sweep job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog sweep job.
func (j *BacklogSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog sweep job stopped")
}
