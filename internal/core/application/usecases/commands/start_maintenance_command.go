package commands

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrStartMaintenanceCommandIsNotConstructed = errors.New(
		"StartMaintenanceCommand must be created via NewStartMaintenanceCommand constructor",
	)
)

// StartMaintenanceCommand represents a request to pull an active vehicle into
// maintenance. Open notes are optional.
type StartMaintenanceCommand struct {
	vehicleID       int64
	technician      string
	maintenanceType maintenance.MaintenanceType
	notesOpen       string

	guard guard.ConstructorGuard
}

// NewStartMaintenanceCommand creates a command to open a maintenance record.
// Validates the vehicle identifier, the technician name, and the maintenance
// type code.
func NewStartMaintenanceCommand(
	vehicleID int64,
	technician string,
	maintenanceType maintenance.MaintenanceType,
	notesOpen string,
) (StartMaintenanceCommand, error) {
	cmd := StartMaintenanceCommand{
		notesOpen: notesOpen,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setTechnician(technician),
		cmd.setMaintenanceType(maintenanceType),
	); err != nil {
		return StartMaintenanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrStartMaintenanceCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to service.
func (c StartMaintenanceCommand) VehicleID() int64 {
	return c.vehicleID
}

// Technician returns the name of the technician opening the record.
func (c StartMaintenanceCommand) Technician() string {
	return c.technician
}

// MaintenanceType returns the maintenance type code.
func (c StartMaintenanceCommand) MaintenanceType() maintenance.MaintenanceType {
	return c.maintenanceType
}

// NotesOpen returns the optional notes recorded when the visit opens.
func (c StartMaintenanceCommand) NotesOpen() string {
	return c.notesOpen
}

func (c *StartMaintenanceCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleId",
			fmt.Errorf("%d is not a valid identifier", vehicleID),
		)
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *StartMaintenanceCommand) setTechnician(technician string) error {
	if technician == "" {
		return errs.NewValueIsRequiredError("technician")
	}
	c.technician = technician
	return nil
}

func (c *StartMaintenanceCommand) setMaintenanceType(maintenanceType maintenance.MaintenanceType) error {
	if err := maintenanceType.Validate(); err != nil {
		return err
	}
	c.maintenanceType = maintenanceType
	return nil
}
