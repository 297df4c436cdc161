package http

import (
	"time"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/core/domain/model/vehicle"
)

// Wire representations exchanged with the orchestrator. Field names follow
// the established camelCase contract, including isDeleted for the retired
// flag.

// Vehicle is the wire representation of a vehicle.
type Vehicle struct {
	ID              int64      `json:"id"`
	VIN             string     `json:"vin"`
	Color           string     `json:"color"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	IsActive        bool       `json:"isActive"`
	IsDeleted       bool       `json:"isDeleted"`
	LastServiceDate *time.Time `json:"lastServiceDate"`
}

// Maintenance is the wire representation of a maintenance record. Type and
// status travel as their integer codes.
type Maintenance struct {
	ID                int64      `json:"id"`
	VehicleID         int64      `json:"vehicleId"`
	Technician        string     `json:"technician"`
	MaintenanceTypeID int        `json:"maintenanceTypeId"`
	StatusID          int        `json:"statusId"`
	NotesOpen         string     `json:"notesOpen"`
	NotesClose        *string    `json:"notesClose"`
	CreatedOn         time.Time  `json:"createdOn"`
	CompletedOn       *time.Time `json:"completedOn"`
}

// PartOrder is the wire representation of a part order.
type PartOrder struct {
	ID              int64      `json:"id"`
	MaintenanceID   int64      `json:"maintenanceId"`
	PurchaseCardNum string     `json:"purchaseCardNum"`
	TotalAmount     float64    `json:"totalAmount"`
	PurchasedOn     time.Time  `json:"purchasedOn"`
	InstalledOn     *time.Time `json:"installedOn"`
}

// SyncMaintenance is a maintenance record with its part orders nested, as
// served by the hierarchical sync endpoint.
type SyncMaintenance struct {
	Maintenance
	PartOrders []PartOrder `json:"partOrders"`
}

// SyncVehicle is a vehicle with its full maintenance history nested.
type SyncVehicle struct {
	Vehicle
	Maintenances []SyncMaintenance `json:"maintenances"`
}

// SyncResponse is the hierarchical sync page plus the total vehicle count for
// pagination.
type SyncResponse struct {
	Vehicles   []SyncVehicle `json:"vehicles"`
	TotalCount int64         `json:"totalCount"`
}

// RegisterVehicleRequest is the body of POST /vehicles/.
type RegisterVehicleRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	VIN   string `json:"vin"`
	Color string `json:"color"`
}

// StartMaintenanceRequest is the body of POST /maintenance/start.
type StartMaintenanceRequest struct {
	VehicleID         int64  `json:"vehicleId"`
	Technician        string `json:"technician"`
	MaintenanceTypeID int    `json:"maintenanceTypeId"`
	NotesOpen         string `json:"notesOpen"`
}

// OrderPartsRequest is the body of POST /maintenance/parts.
type OrderPartsRequest struct {
	MaintenanceID   int64   `json:"maintenanceId"`
	PurchaseCardNum string  `json:"purchaseCardNum"`
	TotalAmount     float64 `json:"totalAmount"`
}

// CompleteMaintenanceRequest is the body of PUT /maintenance/:id/complete.
type CompleteMaintenanceRequest struct {
	NotesClose *string `json:"notesClose"`
}

// Error is the wire representation of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func vehicleFromDomain(v *vehicle.Vehicle) Vehicle {
	return Vehicle{
		ID:              v.ID(),
		VIN:             v.VIN(),
		Color:           v.Color(),
		Make:            v.Make(),
		Model:           v.Model(),
		Year:            v.Year(),
		IsActive:        v.IsActive(),
		IsDeleted:       v.IsRetired(),
		LastServiceDate: v.LastServiceDate(),
	}
}

func maintenanceFromDomain(m *maintenance.Maintenance) Maintenance {
	return Maintenance{
		ID:                m.ID(),
		VehicleID:         m.VehicleID(),
		Technician:        m.Technician(),
		MaintenanceTypeID: int(m.Type()),
		StatusID:          int(m.Status()),
		NotesOpen:         m.NotesOpen(),
		NotesClose:        m.NotesClose(),
		CreatedOn:         m.CreatedOn(),
		CompletedOn:       m.CompletedOn(),
	}
}

func partOrderFromDomain(p *maintenance.PartOrder) PartOrder {
	return PartOrder{
		ID:              p.ID(),
		MaintenanceID:   p.MaintenanceID(),
		PurchaseCardNum: p.PurchaseCardNum(),
		TotalAmount:     p.TotalAmount(),
		PurchasedOn:     p.PurchasedOn(),
		InstalledOn:     p.InstalledOn(),
	}
}

func vehicleFromResponse(r queries.VehicleResponse) Vehicle {
	return Vehicle{
		ID:              r.ID,
		VIN:             r.VIN,
		Color:           r.Color,
		Make:            r.Make,
		Model:           r.Model,
		Year:            r.Year,
		IsActive:        r.IsActive,
		IsDeleted:       r.IsRetired,
		LastServiceDate: r.LastServiceDate,
	}
}

func maintenanceFromResponse(r queries.MaintenanceResponse) Maintenance {
	return Maintenance{
		ID:                r.ID,
		VehicleID:         r.VehicleID,
		Technician:        r.Technician,
		MaintenanceTypeID: r.MaintenanceTypeID,
		StatusID:          r.StatusID,
		NotesOpen:         r.NotesOpen,
		NotesClose:        r.NotesClose,
		CreatedOn:         r.CreatedOn,
		CompletedOn:       r.CompletedOn,
	}
}

func partOrderFromResponse(r queries.PartOrderResponse) PartOrder {
	return PartOrder{
		ID:              r.ID,
		MaintenanceID:   r.MaintenanceID,
		PurchaseCardNum: r.PurchaseCardNum,
		TotalAmount:     r.TotalAmount,
		PurchasedOn:     r.PurchasedOn,
		InstalledOn:     r.InstalledOn,
	}
}

func syncResponseFromQuery(r queries.FleetSyncResponse) SyncResponse {
	response := SyncResponse{
		Vehicles:   make([]SyncVehicle, 0, len(r.Vehicles)),
		TotalCount: r.TotalCount,
	}

	for _, v := range r.Vehicles {
		nested := SyncVehicle{
			Vehicle:      vehicleFromResponse(v.VehicleResponse),
			Maintenances: make([]SyncMaintenance, 0, len(v.Maintenances)),
		}
		for _, m := range v.Maintenances {
			record := SyncMaintenance{
				Maintenance: maintenanceFromResponse(m.MaintenanceResponse),
				PartOrders:  make([]PartOrder, 0, len(m.PartOrders)),
			}
			for _, p := range m.PartOrders {
				record.PartOrders = append(record.PartOrders, partOrderFromResponse(p))
			}
			nested.Maintenances = append(nested.Maintenances, record)
		}
		response.Vehicles = append(response.Vehicles, nested)
	}

	return response
}
