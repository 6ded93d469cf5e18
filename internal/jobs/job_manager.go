package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogSweepJob *BacklogSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the sweep handler as a dependency to wire up the job execution.
func NewJobManager(
	sweeper commands.BacklogSweeper,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backlogSweepJob: NewBacklogSweepJob(sweeper, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start backlog sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogSweepJob.Stop()
}
