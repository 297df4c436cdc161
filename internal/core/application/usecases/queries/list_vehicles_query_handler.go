package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListVehiclesQueryHandler retrieves pages of vehicles in insertion order for
// the orchestrator's polling sync.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewListVehiclesQueryHandler creates a handler for vehicle listing queries.
func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle executes the listing query. Results are ordered by id ascending and
// restricted to the id set when one was supplied.
func (h ListVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			COALESCE(vin, '') AS vin,
			color,
			make,
			model,
			year,
			is_active,
			is_deleted,
			last_service_date
		FROM fm_vehicles
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

	vehicles := make([]VehicleResponse, 0)
	for rows.Next() {
		var v VehicleResponse
		if err = rows.Scan(
			&v.ID,
			&v.VIN,
			&v.Color,
			&v.Make,
			&v.Model,
			&v.Year,
			&v.IsActive,
			&v.IsRetired,
			&v.LastServiceDate,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
