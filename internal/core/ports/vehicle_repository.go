package ports

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
)

// VehicleRepository persists Vehicle aggregates.
type VehicleRepository interface {
	// Add inserts a new vehicle and assigns its store-generated identifier.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update saves an existing vehicle. Returns ObjectNotFoundError if the
	// vehicle does not exist.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// UpdateForServiceStart saves a vehicle that was just taken out of the
	// active pool, guarding against a concurrent service start: the row is
	// only written if it is still flagged active in the store. Returns a
	// DomainRuleViolationError when another transaction won the race.
	UpdateForServiceStart(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by identifier. Returns ObjectNotFoundError if
	// the identifier does not resolve.
	Get(ctx context.Context, id int64) (*vehicle.Vehicle, error)
}
