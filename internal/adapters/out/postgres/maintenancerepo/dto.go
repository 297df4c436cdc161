// Package maintenancerepo provides data transfer objects and mapping
// functions for maintenance persistence. The Maintenance aggregate spans two
// tables: the maintenance record itself and the part orders it owns.
package maintenancerepo

import (
	"time"

	"fleet/internal/core/domain/model/maintenance"
)

// MaintenanceDTO represents the database structure for persisting maintenance
// records. Type and status are stored as their integer wire codes.
type MaintenanceDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	VehicleID         int64 `gorm:"index"`
	Technician        string
	MaintenanceTypeID int
	StatusID          int
	NotesOpen         string
	NotesClose        *string
	CreatedOn         time.Time
	CompletedOn       *time.Time
}

// TableName specifies the database table name for maintenance entities.
func (MaintenanceDTO) TableName() string {
	return "fm_maintenances"
}

// PartOrderDTO represents the database structure for persisting part orders.
type PartOrderDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	MaintenanceID   int64 `gorm:"index"`
	PurchaseCardNum string
	TotalAmount     float64
	PurchasedOn     time.Time
	InstalledOn     *time.Time
}

// TableName specifies the database table name for part order entities.
func (PartOrderDTO) TableName() string {
	return "fm_part_orders"
}

// fromDomain converts a maintenance aggregate to its database representation,
// excluding part orders, which are persisted row by row.
func fromDomain(aggregate *maintenance.Maintenance) MaintenanceDTO {
	return MaintenanceDTO{
		ID:                aggregate.ID(),
		VehicleID:         aggregate.VehicleID(),
		Technician:        aggregate.Technician(),
		MaintenanceTypeID: int(aggregate.Type()),
		StatusID:          int(aggregate.Status()),
		NotesOpen:         aggregate.NotesOpen(),
		NotesClose:        aggregate.NotesClose(),
		CreatedOn:         aggregate.CreatedOn(),
		CompletedOn:       aggregate.CompletedOn(),
	}
}

// partOrderFromDomain converts a part order entity to its database representation.
func partOrderFromDomain(p *maintenance.PartOrder) PartOrderDTO {
	return PartOrderDTO{
		ID:              p.ID(),
		MaintenanceID:   p.MaintenanceID(),
		PurchaseCardNum: p.PurchaseCardNum(),
		TotalAmount:     p.TotalAmount(),
		PurchasedOn:     p.PurchasedOn(),
		InstalledOn:     p.InstalledOn(),
	}
}

// toDomain converts the maintenance DTO and its part order DTOs back into the
// aggregate.
func toDomain(dto MaintenanceDTO, partOrderDTOs []PartOrderDTO) (*maintenance.Maintenance, error) {
	partOrders := make([]*maintenance.PartOrder, 0, len(partOrderDTOs))
	for _, p := range partOrderDTOs {
		restored, err := maintenance.RestorePartOrder(
			p.ID,
			p.MaintenanceID,
			p.PurchaseCardNum,
			p.TotalAmount,
			p.PurchasedOn,
			p.InstalledOn,
		)
		if err != nil {
			return nil, err
		}
		partOrders = append(partOrders, restored)
	}

	return maintenance.RestoreMaintenance(
		dto.ID,
		dto.VehicleID,
		dto.Technician,
		maintenance.MaintenanceType(dto.MaintenanceTypeID),
		maintenance.Status(dto.StatusID),
		dto.NotesOpen,
		dto.NotesClose,
		dto.CreatedOn,
		dto.CompletedOn,
		partOrders,
	)
}
