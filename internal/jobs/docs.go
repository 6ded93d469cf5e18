// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the assignment engine.
//
// # Available Jobs
//
// 1. BacklogSweepJob - Periodically retries assignment for orders still awaiting a worker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the sweep handler
//	jobManager := jobs.NewJobManager(sweepHandler, "*/15 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a six-field cron expression (with seconds) taken from
// configuration. Inline sweeps triggered by startDay and delivery completion
// handle the common capacity-freed cases, so the periodic job can run at a
// relaxed interval.
//
// # Error Handling
//
// - The sweep job ignores the expected fully-booked case (no capacity)
// - Other sweep errors are logged and the next run proceeds normally
// - Failed job starts will stop any already running jobs
package jobs
