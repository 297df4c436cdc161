package queries

import (
	"context"

	"fleet/internal/core/domain/model/maintenance"

	"gorm.io/gorm"
)

// OpenMaintenanceReportQueryHandler retrieves maintenance records that have
// been open since before a cutoff.
type OpenMaintenanceReportQueryHandler struct {
	db *gorm.DB
}

// NewOpenMaintenanceReportQueryHandler creates a handler for stale-maintenance reports.
func NewOpenMaintenanceReportQueryHandler(db *gorm.DB) OpenMaintenanceReportQueryHandler {
	return OpenMaintenanceReportQueryHandler{db: db}
}

// Handle executes the report query, returning non-completed records created
// before the cutoff, oldest first.
func (h OpenMaintenanceReportQueryHandler) Handle(
	ctx context.Context,
	query OpenMaintenanceReportQuery,
) ([]OpenMaintenanceReportResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			technician,
			status_id,
			created_on
		FROM fm_maintenances
		WHERE status_id != ? AND created_on < ?
		ORDER BY created_on
	`, int(maintenance.Completed), query.OlderThan()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]OpenMaintenanceReportResponse, 0)
	for rows.Next() {
		var r OpenMaintenanceReportResponse
		if err = rows.Scan(
			&r.ID,
			&r.VehicleID,
			&r.Technician,
			&r.StatusID,
			&r.CreatedOn,
		); err != nil {
			return nil, err
		}
		report = append(report, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
