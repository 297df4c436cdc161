package commands

import (
	"errors"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrRegisterVehicleCommandIsNotConstructed = errors.New(
		"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
	)
)

// RegisterVehicleCommand represents a request to add a vehicle to the fleet.
// Make, model, and year are required; VIN and color are optional.
type RegisterVehicleCommand struct {
	vehicleMake string
	model       string
	year        int
	vin         string
	color       string

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a new vehicle.
// Validates that make and model are present and the year is positive; the
// plausibility range is enforced by the Vehicle aggregate itself.
func NewRegisterVehicleCommand(vehicleMake, model string, year int, vin, color string) (RegisterVehicleCommand, error) {
	cmd := RegisterVehicleCommand{
		vin:   vin,
		color: color,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMake(vehicleMake),
		cmd.setModel(model),
		cmd.setYear(year),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// Make returns the manufacturer name.
func (c RegisterVehicleCommand) Make() string {
	return c.vehicleMake
}

// Model returns the model name.
func (c RegisterVehicleCommand) Model() string {
	return c.model
}

// Year returns the model year.
func (c RegisterVehicleCommand) Year() int {
	return c.year
}

// VIN returns the optional vehicle identification number.
func (c RegisterVehicleCommand) VIN() string {
	return c.vin
}

// Color returns the optional vehicle color.
func (c RegisterVehicleCommand) Color() string {
	return c.color
}

func (c *RegisterVehicleCommand) setMake(vehicleMake string) error {
	if vehicleMake == "" {
		return errs.NewValueIsRequiredError("make")
	}
	c.vehicleMake = vehicleMake
	return nil
}

func (c *RegisterVehicleCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	c.model = model
	return nil
}

func (c *RegisterVehicleCommand) setYear(year int) error {
	if year <= 0 {
		return errs.NewValueIsRequiredError("year")
	}
	c.year = year
	return nil
}
