package vehicle

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// firstModelYear is the earliest plausible model year for a registered vehicle.
const firstModelYear = 1886

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not created
	// through the NewVehicle or RestoreVehicle factory methods.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

	// ErrVehicleAlreadyPersisted is returned when an identifier is assigned to a
	// vehicle that already carries one.
	ErrVehicleAlreadyPersisted = errors.New("vehicle already has an identifier assigned")
)

// Vehicle is the aggregate root for a fleet vehicle. It owns the vehicle's
// availability state across the maintenance lifecycle.
//
// Vehicle maintains these invariants:
//   - A retired vehicle is never active.
//   - A vehicle is either active or under maintenance, never both.
//   - Retirement is terminal; no service may start against a retired vehicle.
//
// State transitions:
//
//	Active ──(BeginService)──> InMaintenance ──(ReturnFromService)──> Active
//	Active ──(Retire)──> Retired (terminal)
//	InMaintenance ──(Retire)──> Retired (terminal)
//
// A vehicle retired while under maintenance stays inactive even after the open
// maintenance record is completed.
type Vehicle struct {
	// id is assigned by the store on first persist; zero means unpersisted
	id int64

	// vin is the manufacturer identification number, optional at registration
	vin string

	color string
	make  string
	model string
	year  int

	// active reports whether the vehicle is available for dispatch
	active bool

	// retired marks the vehicle as permanently withdrawn from the fleet
	retired bool

	// lastServiceDate is set each time maintenance completes
	lastServiceDate *time.Time

	guard guard.ConstructorGuard
}

// NewVehicle registers a vehicle into the fleet. New vehicles start active and
// non-retired with no service history. VIN and color are optional.
func NewVehicle(vehicleMake, model string, year int, vin, color string) (*Vehicle, error) {
	v := &Vehicle{
		vin:    vin,
		color:  color,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setMake(vehicleMake),
		v.setModel(model),
		v.setYear(year),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence. It re-checks the
// retired/active invariant so corrupted rows never become live aggregates.
func RestoreVehicle(
	id int64,
	vehicleMake, model string,
	year int,
	vin, color string,
	active, retired bool,
	lastServiceDate *time.Time,
) (*Vehicle, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	if retired && active {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"active",
			errors.New("a retired vehicle cannot be active"),
		)
	}

	v := &Vehicle{
		id:              id,
		vin:             vin,
		color:           color,
		active:          active,
		retired:         retired,
		lastServiceDate: lastServiceDate,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setMake(vehicleMake),
		v.setModel(model),
		v.setYear(year),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id != 0 && v.id == other.id
}

// ID returns the store-assigned identifier, zero if the vehicle is unpersisted.
func (v *Vehicle) ID() int64 {
	return v.id
}

// AssignID records the store-assigned identifier after the first persist.
// Assigning twice or assigning a non-positive identifier is an error.
func (v *Vehicle) AssignID(id int64) error {
	if v.id != 0 {
		return ErrVehicleAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	v.id = id
	return nil
}

// VIN returns the vehicle identification number, empty if not recorded.
func (v *Vehicle) VIN() string {
	return v.vin
}

// Color returns the vehicle color, empty if not recorded.
func (v *Vehicle) Color() string {
	return v.color
}

// Make returns the vehicle manufacturer name.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the vehicle model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the vehicle model year.
func (v *Vehicle) Year() int {
	return v.year
}

// IsActive reports whether the vehicle is available for dispatch.
func (v *Vehicle) IsActive() bool {
	return v.active
}

// IsRetired reports whether the vehicle was permanently withdrawn.
func (v *Vehicle) IsRetired() bool {
	return v.retired
}

// LastServiceDate returns when maintenance last completed, nil if never serviced.
func (v *Vehicle) LastServiceDate() *time.Time {
	return v.lastServiceDate
}

// State derives the lifecycle state from the active/retired flags.
func (v *Vehicle) State() State {
	switch {
	case v.retired:
		return Retired
	case v.active:
		return Active
	default:
		return InMaintenance
	}
}

// BeginService takes the vehicle out of the active pool for maintenance.
// Fails when the vehicle is retired or already out of service, which also
// enforces at most one open maintenance record per vehicle.
func (v *Vehicle) BeginService() error {
	if v.retired {
		return errs.NewDomainRuleViolationError("cannot service a retired vehicle")
	}
	if !v.active {
		return errs.NewDomainRuleViolationError("cannot service an inactive vehicle")
	}

	v.active = false
	return nil
}

// ReturnFromService records a completed maintenance. The service date is
// always updated; the vehicle only returns to the active pool if it was not
// retired while under maintenance.
func (v *Vehicle) ReturnFromService(at time.Time) {
	v.lastServiceDate = &at
	if !v.retired {
		v.active = true
	}
}

// Retire permanently withdraws the vehicle from the fleet. Retiring an
// already-retired vehicle is a no-op.
func (v *Vehicle) Retire() {
	v.retired = true
	v.active = false
}

func (v *Vehicle) setMake(vehicleMake string) error {
	if vehicleMake == "" {
		return errs.NewValueIsRequiredError("make")
	}
	v.make = vehicleMake
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < firstModelYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, firstModelYear, maxYear)
	}
	v.year = year
	return nil
}
