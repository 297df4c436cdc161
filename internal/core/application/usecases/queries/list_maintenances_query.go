package queries

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrListMaintenancesQueryIsNotConstructed = errors.New(
	"ListMaintenancesQuery must be created via NewListMaintenancesQuery constructor",
)

// ListMaintenancesQuery represents a request for a page of maintenance
// records, optionally restricted to an id set.
type ListMaintenancesQuery struct {
	startIndex int
	batchSize  int
	ids        []int64

	guard guard.ConstructorGuard
}

// NewListMaintenancesQuery creates a maintenance listing query with the same
// tolerant parameter handling as NewListVehiclesQuery.
func NewListMaintenancesQuery(startIndex, batchSize int, idsFilter string) ListMaintenancesQuery {
	return ListMaintenancesQuery{
		startIndex: clampStartIndex(startIndex),
		batchSize:  normalizeBatchSize(batchSize),
		ids:        parseIDFilter(idsFilter),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListMaintenancesQuery) Validate() error {
	return q.guard.Validate(ErrListMaintenancesQueryIsNotConstructed)
}

// StartIndex returns the page offset.
func (q ListMaintenancesQuery) StartIndex() int {
	return q.startIndex
}

// BatchSize returns the page size.
func (q ListMaintenancesQuery) BatchSize() int {
	return q.batchSize
}

// IDs returns the id-set filter, nil when unfiltered.
func (q ListMaintenancesQuery) IDs() []int64 {
	return q.ids
}
