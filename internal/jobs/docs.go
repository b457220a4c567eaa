// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. ExportSnapshotJob - Periodically rewrites a plain-text snapshot of all placed orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(exportOrdersHandler, "orders.txt", "0 * * * * *", logger)
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
// The export job takes a six-field cron expression (seconds included), e.g.
// "0 * * * * *" for once a minute. Each run truncates and rewrites the
// snapshot file so readers always see the complete history.
//
// # Error Handling
//
// Export failures are logged and the job keeps running; the next run
// rewrites the snapshot.
package jobs
