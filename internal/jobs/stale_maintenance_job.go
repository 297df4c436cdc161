package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long a maintenance record may stay open before the
// watchdog flags it.
const staleAfter = 24 * time.Hour

// StaleMaintenanceJob periodically scans for maintenance records that have
// been open longer than the threshold and logs them for the operations team.
// Runs every five minutes.
type StaleMaintenanceJob struct {
	handler queries.OpenMaintenanceReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleMaintenanceJob creates a new watchdog job for long-open maintenance.
// Uses OpenMaintenanceReportQueryHandler to fetch records past the threshold.
func NewStaleMaintenanceJob(handler queries.OpenMaintenanceReportQueryHandler, logger *slog.Logger) *StaleMaintenanceJob {
	return &StaleMaintenanceJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_maintenance_job"),
	}
}

// Start begins the watchdog job to run every five minutes.
func (j *StaleMaintenanceJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		query := queries.NewOpenMaintenanceReportQuery(time.Now().UTC().Add(-staleAfter))

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale maintenance scan failed", "error", err)
			return
		}

		for _, record := range stale {
			j.logger.WarnContext(ctx, "Maintenance open past threshold",
				"maintenanceId", record.ID,
				"vehicleId", record.VehicleID,
				"technician", record.Technician,
				"statusId", record.StatusID,
				"openSince", record.CreatedOn,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale maintenance job started (running every five minutes)")
	return nil
}

// Stop stops the watchdog job.
func (j *StaleMaintenanceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale maintenance job stopped")
}
