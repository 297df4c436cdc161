package maintenance_test

import (
	"testing"

	"fleet/internal/core/domain/model/maintenance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_WireCodes(t *testing.T) {
	// The integer codes are shared with the orchestrator and must stay fixed.
	assert.Equal(t, 1, int(maintenance.InProgress))
	assert.Equal(t, 2, int(maintenance.WaitingForParts))
	assert.Equal(t, 3, int(maintenance.Completed))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		for _, s := range []maintenance.Status{
			maintenance.InProgress,
			maintenance.WaitingForParts,
			maintenance.Completed,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject undefined statuses", func(t *testing.T) {
		for _, s := range []maintenance.Status{
			maintenance.StatusUnknown,
			maintenance.Status(4),
			maintenance.Status(-1),
		} {
			require.Error(t, s.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "InProgress", maintenance.InProgress.String())
	assert.Equal(t, "WaitingForParts", maintenance.WaitingForParts.String())
	assert.Equal(t, "Completed", maintenance.Completed.String())
	assert.Equal(t, "Unknown", maintenance.StatusUnknown.String())
}

func TestStatus_RequestParts(t *testing.T) {
	t.Run("open records move to waiting for parts", func(t *testing.T) {
		assert.Equal(t, maintenance.WaitingForParts, maintenance.InProgress.RequestParts())
		assert.Equal(t, maintenance.WaitingForParts, maintenance.WaitingForParts.RequestParts())
	})

	t.Run("completed records stay completed", func(t *testing.T) {
		assert.Equal(t, maintenance.Completed, maintenance.Completed.RequestParts())
	})
}

func TestStatus_Complete(t *testing.T) {
	assert.Equal(t, maintenance.Completed, maintenance.InProgress.Complete())
	assert.Equal(t, maintenance.Completed, maintenance.WaitingForParts.Complete())
	assert.Equal(t, maintenance.Completed, maintenance.Completed.Complete())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, maintenance.InProgress.IsTerminal())
	assert.False(t, maintenance.WaitingForParts.IsTerminal())
	assert.True(t, maintenance.Completed.IsTerminal())
}

func TestMaintenanceType_WireCodes(t *testing.T) {
	// The integer codes are shared with the orchestrator and must stay fixed.
	assert.Equal(t, 1, int(maintenance.StandardService))
	assert.Equal(t, 2, int(maintenance.InitialInspection))
	assert.Equal(t, 3, int(maintenance.Repair))
}

func TestMaintenanceType_Validate(t *testing.T) {
	t.Run("should accept defined types", func(t *testing.T) {
		for _, mt := range []maintenance.MaintenanceType{
			maintenance.StandardService,
			maintenance.InitialInspection,
			maintenance.Repair,
		} {
			require.NoError(t, mt.Validate())
		}
	})

	t.Run("should reject undefined types", func(t *testing.T) {
		for _, mt := range []maintenance.MaintenanceType{
			maintenance.TypeUnknown,
			maintenance.MaintenanceType(4),
			maintenance.MaintenanceType(-1),
		} {
			require.Error(t, mt.Validate())
		}
	})
}
