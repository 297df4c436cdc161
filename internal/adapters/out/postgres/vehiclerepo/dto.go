// Package vehiclerepo provides data transfer objects and mapping functions for
// vehicle persistence, implementing the repository pattern for the Vehicle
// aggregate.
package vehiclerepo

import (
	"time"

	"fleet/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The VIN is stored as a nullable column so the unique index
// tolerates vehicles registered without one.
type VehicleDTO struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	VIN             *string `gorm:"column:vin;uniqueIndex"`
	Color           string
	Make            string
	Model           string
	Year            int
	IsActive        bool
	IsDeleted       bool
	LastServiceDate *time.Time
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "fm_vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var vin *string
	if v := aggregate.VIN(); v != "" {
		vin = &v
	}

	return VehicleDTO{
		ID:              aggregate.ID(),
		VIN:             vin,
		Color:           aggregate.Color(),
		Make:            aggregate.Make(),
		Model:           aggregate.Model(),
		Year:            aggregate.Year(),
		IsActive:        aggregate.IsActive(),
		IsDeleted:       aggregate.IsRetired(),
		LastServiceDate: aggregate.LastServiceDate(),
	}
}

// toDomain converts a database DTO to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	vin := ""
	if dto.VIN != nil {
		vin = *dto.VIN
	}

	return vehicle.RestoreVehicle(
		dto.ID,
		dto.Make,
		dto.Model,
		dto.Year,
		vin,
		dto.Color,
		dto.IsActive,
		dto.IsDeleted,
		dto.LastServiceDate,
	)
}
