package ports

import (
	"context"

	"fleet/internal/core/domain/model/maintenance"
)

// MaintenanceRepository persists Maintenance aggregates together with their
// part orders.
type MaintenanceRepository interface {
	// Add inserts a new maintenance record (and any part orders it already
	// owns) and assigns store-generated identifiers.
	Add(ctx context.Context, aggregate *maintenance.Maintenance) error

	// Update saves an existing maintenance record, inserting any part orders
	// added since it was loaded. Returns ObjectNotFoundError if the record
	// does not exist.
	Update(ctx context.Context, aggregate *maintenance.Maintenance) error

	// Get retrieves a maintenance record with its part orders. Returns
	// ObjectNotFoundError if the identifier does not resolve.
	Get(ctx context.Context, id int64) (*maintenance.Maintenance, error)
}
