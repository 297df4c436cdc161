package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListMaintenancesQueryHandler retrieves pages of maintenance records in
// insertion order for the orchestrator's polling sync.
type ListMaintenancesQueryHandler struct {
	db *gorm.DB
}

// NewListMaintenancesQueryHandler creates a handler for maintenance listing queries.
func NewListMaintenancesQueryHandler(db *gorm.DB) ListMaintenancesQueryHandler {
	return ListMaintenancesQueryHandler{db: db}
}

// Handle executes the listing query. Results are ordered by id ascending and
// restricted to the id set when one was supplied.
func (h ListMaintenancesQueryHandler) Handle(
	ctx context.Context,
	query ListMaintenancesQuery,
) ([]MaintenanceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			vehicle_id,
			technician,
			maintenance_type_id,
			status_id,
			notes_open,
			notes_close,
			created_on,
			completed_on
		FROM fm_maintenances
	`
	args := make([]any, 0, 3)
	if len(query.IDs()) > 0 {
		sql += ` WHERE id IN ?`
		args = append(args, query.IDs())
	}
	sql += ` ORDER BY id OFFSET ? LIMIT ?`
	args = append(args, query.StartIndex(), query.BatchSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	maintenances := make([]MaintenanceResponse, 0)
	for rows.Next() {
		var m MaintenanceResponse
		if err = rows.Scan(
			&m.ID,
			&m.VehicleID,
			&m.Technician,
			&m.MaintenanceTypeID,
			&m.StatusID,
			&m.NotesOpen,
			&m.NotesClose,
			&m.CreatedOn,
			&m.CompletedOn,
		); err != nil {
			return nil, err
		}
		maintenances = append(maintenances, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return maintenances, nil
}
