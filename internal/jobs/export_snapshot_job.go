package jobs

import (
	"context"
	"log/slog"
	"os"

	"ruburger/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExportSnapshotJob periodically writes a receipt-style snapshot of all placed
// orders to a file. Each run rewrites the file from scratch so it always holds
// the full placed-order history.
type ExportSnapshotJob struct {
	handler  commands.ExportOrdersCommandHandler
	path     string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExportSnapshotJob creates a new job that exports placed orders to path
// on the given cron schedule (with seconds field).
func NewExportSnapshotJob(
	handler commands.ExportOrdersCommandHandler,
	path string,
	schedule string,
	logger *slog.Logger,
) *ExportSnapshotJob {
	return &ExportSnapshotJob{
		handler:  handler,
		path:     path,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "export_snapshot_job"),
	}
}

// Start begins the export snapshot job on its schedule.
func (j *ExportSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Export snapshot job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Export snapshot job started",
		"path", j.path, "schedule", j.schedule)
	return nil
}

func (j *ExportSnapshotJob) run(ctx context.Context) error {
	file, err := os.Create(j.path)
	if err != nil {
		return err
	}
	defer file.Close()

	cmd, err := commands.NewExportOrdersCommand(file)
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, cmd)
}

// Stop stops the export snapshot job.
func (j *ExportSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Export snapshot job stopped")
}
