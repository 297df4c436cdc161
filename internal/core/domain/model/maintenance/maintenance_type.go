package maintenance

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// MaintenanceType classifies why a vehicle was pulled into service.
//
// The integer codes are a wire contract shared with the orchestrator's own
// lookup tables and must never be renumbered.
type MaintenanceType int

const (
	// TypeUnknown represents an invalid or undefined maintenance type.
	TypeUnknown MaintenanceType = 0

	// StandardService is a routine scheduled service.
	StandardService MaintenanceType = 1

	// InitialInspection is the first inspection after a vehicle joins the fleet.
	InitialInspection MaintenanceType = 2

	// Repair covers unscheduled defect repairs.
	Repair MaintenanceType = 3
)

// Validate checks if the MaintenanceType value is one of the defined codes.
func (t MaintenanceType) Validate() error {
	switch t {
	case StandardService, InitialInspection, Repair:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"maintenanceType",
			fmt.Errorf("%d is not a valid maintenance type", t),
		)
	}
}

// String returns the human-readable name of the maintenance type.
func (t MaintenanceType) String() string {
	switch t {
	case StandardService:
		return "StandardService"
	case InitialInspection:
		return "InitialInspection"
	case Repair:
		return "Repair"
	default:
		return "Unknown"
	}
}
