package queries

import (
	"context"

	"gorm.io/gorm"
)

// FleetSyncQueryHandler builds the hierarchical vehicle → maintenance →
// part-order view. The nested rows are read from the same tables as the flat
// listing handlers, so both surfaces always reflect the same data.
type FleetSyncQueryHandler struct {
	db *gorm.DB
}

// NewFleetSyncQueryHandler creates a handler for hierarchical sync queries.
func NewFleetSyncQueryHandler(db *gorm.DB) FleetSyncQueryHandler {
	return FleetSyncQueryHandler{db: db}
}

// Handle executes the sync query: one vehicle page, the maintenance history
// of every vehicle on the page, the part orders of every such maintenance,
// and the total vehicle count.
func (h FleetSyncQueryHandler) Handle(ctx context.Context, query FleetSyncQuery) (FleetSyncResponse, error) {
	if err := query.Validate(); err != nil {
		return FleetSyncResponse{}, err
	}

	var totalCount int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT count(*) FROM fm_vehicles`).
		Scan(&totalCount).Error; err != nil {
		return FleetSyncResponse{}, err
	}

	vehicles, err := h.fetchVehiclePage(ctx, query)
	if err != nil {
		return FleetSyncResponse{}, err
	}

	response := FleetSyncResponse{
		Vehicles:   make([]FleetSyncVehicleResponse, 0, len(vehicles)),
		TotalCount: totalCount,
	}
	if len(vehicles) == 0 {
		return response, nil
	}

	vehicleIDs := make([]int64, 0, len(vehicles))
	for _, v := range vehicles {
		vehicleIDs = append(vehicleIDs, v.ID)
	}

	maintenances, err := h.fetchMaintenanceHistory(ctx, vehicleIDs)
	if err != nil {
		return FleetSyncResponse{}, err
	}

	partOrdersByMaintenance, err := h.fetchPartOrders(ctx, maintenances)
	if err != nil {
		return FleetSyncResponse{}, err
	}

	maintenancesByVehicle := make(map[int64][]FleetSyncMaintenanceResponse, len(vehicles))
	for _, m := range maintenances {
		nested := FleetSyncMaintenanceResponse{
			MaintenanceResponse: m,
			PartOrders:          partOrdersByMaintenance[m.ID],
		}
		if nested.PartOrders == nil {
			nested.PartOrders = make([]PartOrderResponse, 0)
		}
		maintenancesByVehicle[m.VehicleID] = append(maintenancesByVehicle[m.VehicleID], nested)
	}

	for _, v := range vehicles {
		history := maintenancesByVehicle[v.ID]
		if history == nil {
			history = make([]FleetSyncMaintenanceResponse, 0)
		}
		response.Vehicles = append(response.Vehicles, FleetSyncVehicleResponse{
			VehicleResponse: v,
			Maintenances:    history,
		})
	}

	return response, nil
}

func (h FleetSyncQueryHandler) fetchVehiclePage(
	ctx context.Context,
	query FleetSyncQuery,
) ([]VehicleResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY id OFFSET ? LIMIT ?
	`, query.StartIndex(), query.BatchSize()).Rows()
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

	return vehicles, rows.Err()
}

func (h FleetSyncQueryHandler) fetchMaintenanceHistory(
	ctx context.Context,
	vehicleIDs []int64,
) ([]MaintenanceResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE vehicle_id IN ?
		ORDER BY id
	`, vehicleIDs).Rows()
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

	return maintenances, rows.Err()
}

func (h FleetSyncQueryHandler) fetchPartOrders(
	ctx context.Context,
	maintenances []MaintenanceResponse,
) (map[int64][]PartOrderResponse, error) {
	grouped := make(map[int64][]PartOrderResponse, len(maintenances))
	if len(maintenances) == 0 {
		return grouped, nil
	}

	maintenanceIDs := make([]int64, 0, len(maintenances))
	for _, m := range maintenances {
		maintenanceIDs = append(maintenanceIDs, m.ID)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			maintenance_id,
			purchase_card_num,
			total_amount,
			purchased_on,
			installed_on
		FROM fm_part_orders
		WHERE maintenance_id IN ?
		ORDER BY id
	`, maintenanceIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PartOrderResponse
		if err = rows.Scan(
			&p.ID,
			&p.MaintenanceID,
			&p.PurchaseCardNum,
			&p.TotalAmount,
			&p.PurchasedOn,
			&p.InstalledOn,
		); err != nil {
			return nil, err
		}
		grouped[p.MaintenanceID] = append(grouped[p.MaintenanceID], p)
	}

	return grouped, rows.Err()
}
