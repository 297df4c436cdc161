package queries_test

import (
	"testing"

	"fleet/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListVehiclesQuery(t *testing.T) {
	t.Run("should create query with valid paging", func(t *testing.T) {
		query := queries.NewListVehiclesQuery(10, 25, "")

		require.NoError(t, query.Validate())
		assert.Equal(t, 10, query.StartIndex())
		assert.Equal(t, 25, query.BatchSize())
		assert.Nil(t, query.IDs())
	})

	t.Run("should clamp negative start index to zero", func(t *testing.T) {
		query := queries.NewListVehiclesQuery(-5, 25, "")

		assert.Equal(t, 0, query.StartIndex())
	})

	t.Run("should fall back to default batch size", func(t *testing.T) {
		testCases := []struct {
			name      string
			batchSize int
		}{
			{"zero batch size", 0},
			{"negative batch size", -10},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				query := queries.NewListVehiclesQuery(0, tc.batchSize, "")

				assert.Equal(t, 100, query.BatchSize())
			})
		}
	})

	t.Run("should parse comma separated id filter", func(t *testing.T) {
		query := queries.NewListVehiclesQuery(0, 25, "2, 9999,7")

		assert.Equal(t, []int64{2, 9999, 7}, query.IDs())
	})

	t.Run("should drop whole filter on any malformed value", func(t *testing.T) {
		testCases := []struct {
			name   string
			filter string
		}{
			{"not a number", "abc"},
			{"partially malformed", "2,x,7"},
			{"trailing comma", "2,9999,"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				query := queries.NewListVehiclesQuery(0, 25, tc.filter)

				assert.Nil(t, query.IDs(), "Malformed filter should mean unfiltered")
			})
		}
	})
}

func TestListVehiclesQuery_Validate(t *testing.T) {
	t.Run("should return error for query created without constructor", func(t *testing.T) {
		var query queries.ListVehiclesQuery

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrListVehiclesQueryIsNotConstructed)
	})
}

func TestListMaintenancesQuery_Validate(t *testing.T) {
	t.Run("should accept constructed query", func(t *testing.T) {
		query := queries.NewListMaintenancesQuery(0, 50, "3")

		require.NoError(t, query.Validate())
		assert.Equal(t, []int64{3}, query.IDs())
	})

	t.Run("should return error for query created without constructor", func(t *testing.T) {
		var query queries.ListMaintenancesQuery

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrListMaintenancesQueryIsNotConstructed)
	})
}

func TestListPartOrdersQuery_Validate(t *testing.T) {
	t.Run("should accept constructed query", func(t *testing.T) {
		query := queries.NewListPartOrdersQuery(0, 50, "")

		require.NoError(t, query.Validate())
	})

	t.Run("should return error for query created without constructor", func(t *testing.T) {
		var query queries.ListPartOrdersQuery

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrListPartOrdersQueryIsNotConstructed)
	})
}
