package queries

import (
	"errors"

	"fleet/internal/pkg/guard"
)

// defaultBatchSize is used when the caller does not supply a positive batch size.
const defaultBatchSize = 100

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery represents a request for a page of vehicles, optionally
// restricted to an id set.
type ListVehiclesQuery struct {
	startIndex int
	batchSize  int
	ids        []int64

	guard guard.ConstructorGuard
}

// NewListVehiclesQuery creates a vehicle listing query. Negative start
// indexes are clamped to zero, a non-positive batch size falls back to the
// default, and a malformed ids filter is dropped entirely.
func NewListVehiclesQuery(startIndex, batchSize int, idsFilter string) ListVehiclesQuery {
	return ListVehiclesQuery{
		startIndex: clampStartIndex(startIndex),
		batchSize:  normalizeBatchSize(batchSize),
		ids:        parseIDFilter(idsFilter),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

// StartIndex returns the page offset.
func (q ListVehiclesQuery) StartIndex() int {
	return q.startIndex
}

// BatchSize returns the page size.
func (q ListVehiclesQuery) BatchSize() int {
	return q.batchSize
}

// IDs returns the id-set filter, nil when unfiltered.
func (q ListVehiclesQuery) IDs() []int64 {
	return q.ids
}

func clampStartIndex(startIndex int) int {
	if startIndex < 0 {
		return 0
	}
	return startIndex
}

func normalizeBatchSize(batchSize int) int {
	if batchSize <= 0 {
		return defaultBatchSize
	}
	return batchSize
}
