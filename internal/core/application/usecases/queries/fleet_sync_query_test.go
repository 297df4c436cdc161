package queries_test

import (
	"testing"
	"time"

	"fleet/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFleetSyncQuery(t *testing.T) {
	t.Run("should create query with valid paging", func(t *testing.T) {
		query := queries.NewFleetSyncQuery(20, 10)

		require.NoError(t, query.Validate())
		assert.Equal(t, 20, query.StartIndex())
		assert.Equal(t, 10, query.BatchSize())
	})

	t.Run("should normalize out of range paging", func(t *testing.T) {
		query := queries.NewFleetSyncQuery(-1, 0)

		assert.Equal(t, 0, query.StartIndex())
		assert.Equal(t, 100, query.BatchSize())
	})
}

func TestFleetSyncQuery_Validate(t *testing.T) {
	t.Run("should return error for query created without constructor", func(t *testing.T) {
		var query queries.FleetSyncQuery

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrFleetSyncQueryIsNotConstructed)
	})
}

func TestNewOpenMaintenanceReportQuery(t *testing.T) {
	t.Run("should create query with cutoff", func(t *testing.T) {
		cutoff := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

		query := queries.NewOpenMaintenanceReportQuery(cutoff)

		require.NoError(t, query.Validate())
		assert.Equal(t, cutoff, query.OlderThan())
	})
}

func TestOpenMaintenanceReportQuery_Validate(t *testing.T) {
	t.Run("should return error for query created without constructor", func(t *testing.T) {
		var query queries.OpenMaintenanceReportQuery

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrOpenMaintenanceReportQueryIsNotConstructed)
	})
}
