package maintenance

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	// ErrMaintenanceIsNotConstructed is returned when a Maintenance instance was not
	// created through the NewMaintenance or RestoreMaintenance factory methods.
	ErrMaintenanceIsNotConstructed = errors.New(
		"Maintenance must be created via NewMaintenance or RestoreMaintenance",
	)

	// ErrMaintenanceAlreadyPersisted is returned when an identifier is assigned to
	// a maintenance record that already carries one.
	ErrMaintenanceAlreadyPersisted = errors.New("maintenance already has an identifier assigned")
)

// Maintenance is the aggregate root for a single service visit of a vehicle.
// It owns the status state machine and the part orders placed during the visit.
//
// Maintenance maintains these invariants:
//   - Status starts at InProgress and only ever moves forward to Completed.
//   - Ordering parts moves an open record to WaitingForParts; a completed
//     record is never reopened by part activity.
//   - Close notes and the completion timestamp are only set on completion.
type Maintenance struct {
	// id is assigned by the store on first persist; zero means unpersisted
	id int64

	// vehicleID back-references the vehicle under service
	vehicleID int64

	technician      string
	maintenanceType MaintenanceType
	status          Status

	notesOpen  string
	notesClose *string

	createdOn   time.Time
	completedOn *time.Time

	// partOrders is the exclusively owned list of purchases for this visit
	partOrders []*PartOrder

	guard guard.ConstructorGuard
}

// NewMaintenance opens a maintenance record for a vehicle. The record starts
// in InProgress with no part orders.
func NewMaintenance(
	vehicleID int64,
	technician string,
	maintenanceType MaintenanceType,
	notesOpen string,
	createdOn time.Time,
) (*Maintenance, error) {
	m := &Maintenance{
		status:    InProgress,
		notesOpen: notesOpen,
		createdOn: createdOn,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setVehicleID(vehicleID),
		m.setTechnician(technician),
		m.setMaintenanceType(maintenanceType),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaintenance reconstructs a maintenance record from persistence,
// including its part orders.
func RestoreMaintenance(
	id, vehicleID int64,
	technician string,
	maintenanceType MaintenanceType,
	status Status,
	notesOpen string,
	notesClose *string,
	createdOn time.Time,
	completedOn *time.Time,
	partOrders []*PartOrder,
) (*Maintenance, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	m := &Maintenance{
		id:          id,
		status:      status,
		notesOpen:   notesOpen,
		notesClose:  notesClose,
		createdOn:   createdOn,
		completedOn: completedOn,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setVehicleID(vehicleID),
		m.setTechnician(technician),
		m.setMaintenanceType(maintenanceType),
		m.setPartOrders(partOrders),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Maintenance instance was properly constructed.
func (m *Maintenance) Validate() error {
	if m == nil {
		return ErrMaintenanceIsNotConstructed
	}
	return m.guard.Validate(ErrMaintenanceIsNotConstructed)
}

// IsEqual compares two maintenance records by identifier.
func (m *Maintenance) IsEqual(other *Maintenance) bool {
	return other != nil && m.id != 0 && m.id == other.id
}

// ID returns the store-assigned identifier, zero if the record is unpersisted.
func (m *Maintenance) ID() int64 {
	return m.id
}

// AssignID records the store-assigned identifier after the first persist and
// back-references the identifier into any part orders created before persist.
func (m *Maintenance) AssignID(id int64) error {
	if m.id != 0 {
		return ErrMaintenanceAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}

	m.id = id
	for _, p := range m.partOrders {
		p.attachTo(id)
	}
	return nil
}

// VehicleID returns the identifier of the vehicle under service.
func (m *Maintenance) VehicleID() int64 {
	return m.vehicleID
}

// Technician returns the name of the technician running the visit.
func (m *Maintenance) Technician() string {
	return m.technician
}

// Type returns the maintenance type code.
func (m *Maintenance) Type() MaintenanceType {
	return m.maintenanceType
}

// Status returns the current lifecycle status.
func (m *Maintenance) Status() Status {
	return m.status
}

// NotesOpen returns the notes recorded when the visit opened.
func (m *Maintenance) NotesOpen() string {
	return m.notesOpen
}

// NotesClose returns the notes recorded on completion, nil until then.
func (m *Maintenance) NotesClose() *string {
	return m.notesClose
}

// CreatedOn returns when the visit opened.
func (m *Maintenance) CreatedOn() time.Time {
	return m.createdOn
}

// CompletedOn returns when the visit closed, nil while still open.
func (m *Maintenance) CompletedOn() *time.Time {
	return m.completedOn
}

// PartOrders returns the purchases placed during this visit.
func (m *Maintenance) PartOrders() []*PartOrder {
	return m.partOrders
}

// IsCompleted reports whether the record reached its terminal status.
func (m *Maintenance) IsCompleted() bool {
	return m.status.IsTerminal()
}

// OrderParts records a parts purchase against this visit and advances the
// status. An open record moves to WaitingForParts; a completed record keeps
// the purchase on file but its status stays Completed.
func (m *Maintenance) OrderParts(
	purchaseCardNum string,
	totalAmount float64,
	purchasedOn time.Time,
) (*PartOrder, error) {
	p, err := NewPartOrder(purchaseCardNum, totalAmount, purchasedOn)
	if err != nil {
		return nil, err
	}

	if m.id != 0 {
		p.attachTo(m.id)
	}

	m.partOrders = append(m.partOrders, p)
	m.status = m.status.RequestParts()
	return p, nil
}

// Complete closes the visit, recording close notes and the completion time.
// Completing an already completed record is a no-op that preserves the
// original close notes and timestamp.
func (m *Maintenance) Complete(notesClose *string, completedOn time.Time) {
	if m.status.IsTerminal() {
		return
	}

	m.status = m.status.Complete()
	m.notesClose = notesClose
	m.completedOn = &completedOn
}

func (m *Maintenance) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleId",
			fmt.Errorf("%d is not a valid identifier", vehicleID),
		)
	}
	m.vehicleID = vehicleID
	return nil
}

func (m *Maintenance) setTechnician(technician string) error {
	if technician == "" {
		return errs.NewValueIsRequiredError("technician")
	}
	m.technician = technician
	return nil
}

func (m *Maintenance) setMaintenanceType(maintenanceType MaintenanceType) error {
	if err := maintenanceType.Validate(); err != nil {
		return err
	}
	m.maintenanceType = maintenanceType
	return nil
}

func (m *Maintenance) setPartOrders(partOrders []*PartOrder) error {
	for _, p := range partOrders {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	m.partOrders = partOrders
	return nil
}
