package queries

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrListPartOrdersQueryIsNotConstructed = errors.New(
	"ListPartOrdersQuery must be created via NewListPartOrdersQuery constructor",
)

// ListPartOrdersQuery represents a request for a page of part orders,
// optionally restricted to an id set.
type ListPartOrdersQuery struct {
	startIndex int
	batchSize  int
	ids        []int64

	guard guard.ConstructorGuard
}

// NewListPartOrdersQuery creates a part-order listing query with the same
// tolerant parameter handling as NewListVehiclesQuery.
func NewListPartOrdersQuery(startIndex, batchSize int, idsFilter string) ListPartOrdersQuery {
	return ListPartOrdersQuery{
		startIndex: clampStartIndex(startIndex),
		batchSize:  normalizeBatchSize(batchSize),
		ids:        parseIDFilter(idsFilter),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListPartOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPartOrdersQueryIsNotConstructed)
}

// StartIndex returns the page offset.
func (q ListPartOrdersQuery) StartIndex() int {
	return q.startIndex
}

// BatchSize returns the page size.
func (q ListPartOrdersQuery) BatchSize() int {
	return q.batchSize
}

// IDs returns the id-set filter, nil when unfiltered.
func (q ListPartOrdersQuery) IDs() []int64 {
	return q.ids
}
