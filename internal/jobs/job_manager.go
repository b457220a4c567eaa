package jobs

import (
	"fmt"
	"log/slog"

	"ruburger/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	exportSnapshotJob *ExportSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	exportOrdersHandler commands.ExportOrdersCommandHandler,
	exportPath string,
	exportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		exportSnapshotJob: NewExportSnapshotJob(exportOrdersHandler, exportPath, exportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.exportSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start export snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.exportSnapshotJob.Stop()
}
