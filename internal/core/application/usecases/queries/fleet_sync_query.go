package queries

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrFleetSyncQueryIsNotConstructed = errors.New(
	"FleetSyncQuery must be created via NewFleetSyncQuery constructor",
)

// FleetSyncQuery represents a request for one page of the hierarchical
// vehicle → maintenance → part-order view. It exists so the orchestrator can
// mirror the whole fleet without N+1 round trips against the flat lists.
type FleetSyncQuery struct {
	startIndex int
	batchSize  int

	guard guard.ConstructorGuard
}

// NewFleetSyncQuery creates a hierarchical sync query with the same tolerant
// paging as the flat listing queries.
func NewFleetSyncQuery(startIndex, batchSize int) FleetSyncQuery {
	return FleetSyncQuery{
		startIndex: clampStartIndex(startIndex),
		batchSize:  normalizeBatchSize(batchSize),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q FleetSyncQuery) Validate() error {
	return q.guard.Validate(ErrFleetSyncQueryIsNotConstructed)
}

// StartIndex returns the page offset.
func (q FleetSyncQuery) StartIndex() int {
	return q.startIndex
}

// BatchSize returns the page size.
func (q FleetSyncQuery) BatchSize() int {
	return q.batchSize
}

// FleetSyncResponse is one page of vehicles with their nested history, plus
// the total vehicle count for pagination bookkeeping.
type FleetSyncResponse struct {
	Vehicles   []FleetSyncVehicleResponse
	TotalCount int64
}

// FleetSyncVehicleResponse is a vehicle expanded with its full maintenance history.
type FleetSyncVehicleResponse struct {
	VehicleResponse
	Maintenances []FleetSyncMaintenanceResponse
}

// FleetSyncMaintenanceResponse is a maintenance record expanded with its part orders.
type FleetSyncMaintenanceResponse struct {
	MaintenanceResponse
	PartOrders []PartOrderResponse
}
