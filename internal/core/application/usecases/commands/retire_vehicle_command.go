package commands

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrRetireVehicleCommandIsNotConstructed = errors.New(
		"RetireVehicleCommand must be created via NewRetireVehicleCommand constructor",
	)
)

// RetireVehicleCommand represents a request to permanently withdraw a vehicle
// from the fleet.
type RetireVehicleCommand struct {
	vehicleID int64

	guard guard.ConstructorGuard
}

// NewRetireVehicleCommand creates a command to retire the identified vehicle.
func NewRetireVehicleCommand(vehicleID int64) (RetireVehicleCommand, error) {
	if vehicleID <= 0 {
		return RetireVehicleCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"vehicleId",
			fmt.Errorf("%d is not a valid identifier", vehicleID),
		)
	}

	return RetireVehicleCommand{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetireVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRetireVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to retire.
func (c RetireVehicleCommand) VehicleID() int64 {
	return c.vehicleID
}
