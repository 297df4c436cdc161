package vehicle_test

import (
	"testing"
	"time"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle("Ford", "Transit", 2021, "1FTBW2CM5MKA12345", "White")
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func createPersistedVehicle(t *testing.T, id int64) *vehicle.Vehicle {
	t.Helper()
	v := createValidVehicle(t)
	require.NoError(t, v.AssignID(id))
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("should create vehicle with valid parameters", func(t *testing.T) {
		v, err := vehicle.NewVehicle("Ford", "Transit", 2021, "1FTBW2CM5MKA12345", "White")

		require.NoError(t, err)
		assert.NotNil(t, v)
		require.NoError(t, v.Validate())
		assert.Equal(t, "Ford", v.Make())
		assert.Equal(t, "Transit", v.Model())
		assert.Equal(t, 2021, v.Year())
		assert.Equal(t, "1FTBW2CM5MKA12345", v.VIN())
		assert.Equal(t, "White", v.Color())

		// New vehicles start active with no history
		assert.True(t, v.IsActive())
		assert.False(t, v.IsRetired())
		assert.Nil(t, v.LastServiceDate())
		assert.Equal(t, int64(0), v.ID())
		assert.Equal(t, vehicle.Active, v.State())
	})

	t.Run("should allow empty vin and color", func(t *testing.T) {
		v, err := vehicle.NewVehicle("Ford", "Transit", 2021, "", "")

		require.NoError(t, err)
		assert.Empty(t, v.VIN())
		assert.Empty(t, v.Color())
	})

	t.Run("should return error for empty make", func(t *testing.T) {
		v, err := vehicle.NewVehicle("", "Transit", 2021, "", "")

		require.Error(t, err)
		assert.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "make")
	})

	t.Run("should return error for empty model", func(t *testing.T) {
		v, err := vehicle.NewVehicle("Ford", "", 2021, "", "")

		require.Error(t, err)
		assert.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("should return error for out of range year", func(t *testing.T) {
		testCases := []struct {
			name string
			year int
		}{
			{"zero year", 0},
			{"pre-automobile year", 1885},
			{"far future year", time.Now().Year() + 2},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				v, err := vehicle.NewVehicle("Ford", "Transit", tc.year, "", "")

				require.Error(t, err)
				assert.Nil(t, v)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		v, err := vehicle.NewVehicle("", "", 0, "", "")

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "make")
		assert.Contains(t, err.Error(), "model")
		assert.Contains(t, err.Error(), "year")
	})
}

func TestRestoreVehicle(t *testing.T) {
	serviced := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should restore vehicle with full state", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(42, "Ford", "Transit", 2021, "VIN42", "White", false, false, &serviced)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, int64(42), v.ID())
		assert.False(t, v.IsActive())
		assert.False(t, v.IsRetired())
		require.NotNil(t, v.LastServiceDate())
		assert.Equal(t, serviced, *v.LastServiceDate())
		assert.Equal(t, vehicle.InMaintenance, v.State())
	})

	t.Run("should return error for non-positive id", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(0, "Ford", "Transit", 2021, "", "", true, false, nil)

		require.Error(t, err)
		assert.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject retired vehicle flagged active", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(42, "Ford", "Transit", 2021, "", "", true, true, nil)

		require.Error(t, err)
		assert.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVehicle_AssignID(t *testing.T) {
	t.Run("should assign id once", func(t *testing.T) {
		v := createValidVehicle(t)

		require.NoError(t, v.AssignID(7))
		assert.Equal(t, int64(7), v.ID())
	})

	t.Run("should reject second assignment", func(t *testing.T) {
		v := createPersistedVehicle(t, 7)

		err := v.AssignID(8)

		require.ErrorIs(t, err, vehicle.ErrVehicleAlreadyPersisted)
		assert.Equal(t, int64(7), v.ID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		v := createValidVehicle(t)

		require.Error(t, v.AssignID(0))
		require.Error(t, v.AssignID(-1))
	})
}

func TestVehicle_BeginService(t *testing.T) {
	t.Run("should take active vehicle out of the pool", func(t *testing.T) {
		v := createValidVehicle(t)

		err := v.BeginService()

		require.NoError(t, err)
		assert.False(t, v.IsActive())
		assert.Equal(t, vehicle.InMaintenance, v.State())
	})

	t.Run("should reject vehicle already under maintenance", func(t *testing.T) {
		v := createValidVehicle(t)
		require.NoError(t, v.BeginService())

		err := v.BeginService()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
	})

	t.Run("should reject retired vehicle", func(t *testing.T) {
		v := createValidVehicle(t)
		v.Retire()

		err := v.BeginService()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
	})
}

func TestVehicle_ReturnFromService(t *testing.T) {
	completedAt := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)

	t.Run("should reactivate vehicle and record service date", func(t *testing.T) {
		v := createValidVehicle(t)
		require.NoError(t, v.BeginService())

		v.ReturnFromService(completedAt)

		assert.True(t, v.IsActive())
		require.NotNil(t, v.LastServiceDate())
		assert.Equal(t, completedAt, *v.LastServiceDate())
		assert.Equal(t, vehicle.Active, v.State())
	})

	t.Run("should not reactivate vehicle retired during maintenance", func(t *testing.T) {
		v := createValidVehicle(t)
		require.NoError(t, v.BeginService())
		v.Retire()

		v.ReturnFromService(completedAt)

		assert.False(t, v.IsActive())
		assert.True(t, v.IsRetired())
		// Service date is still recorded for the completed work
		require.NotNil(t, v.LastServiceDate())
		assert.Equal(t, completedAt, *v.LastServiceDate())
		assert.Equal(t, vehicle.Retired, v.State())
	})
}

func TestVehicle_Retire(t *testing.T) {
	t.Run("should withdraw vehicle permanently", func(t *testing.T) {
		v := createValidVehicle(t)

		v.Retire()

		assert.True(t, v.IsRetired())
		assert.False(t, v.IsActive())
		assert.Equal(t, vehicle.Retired, v.State())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		v := createValidVehicle(t)

		v.Retire()
		v.Retire()

		assert.True(t, v.IsRetired())
		assert.False(t, v.IsActive())
	})
}

func TestVehicle_Validate(t *testing.T) {
	t.Run("should fail for zero value vehicle", func(t *testing.T) {
		var v vehicle.Vehicle

		err := v.Validate()

		require.ErrorIs(t, err, vehicle.ErrVehicleIsNotConstructed)
	})

	t.Run("should fail for nil vehicle", func(t *testing.T) {
		var v *vehicle.Vehicle

		err := v.Validate()

		require.ErrorIs(t, err, vehicle.ErrVehicleIsNotConstructed)
	})
}

func TestVehicle_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		a := createPersistedVehicle(t, 1)
		b := createPersistedVehicle(t, 1)
		c := createPersistedVehicle(t, 2)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})

	t.Run("unpersisted vehicles are never equal", func(t *testing.T) {
		a := createValidVehicle(t)
		b := createValidVehicle(t)

		assert.False(t, a.IsEqual(b))
	})
}
