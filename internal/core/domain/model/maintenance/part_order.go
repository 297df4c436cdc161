package maintenance

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	// ErrPartOrderIsNotConstructed is returned when a PartOrder instance was not
	// created through the NewPartOrder or RestorePartOrder factory methods.
	ErrPartOrderIsNotConstructed = errors.New("PartOrder must be created via NewPartOrder or RestorePartOrder")

	// ErrPartOrderAlreadyPersisted is returned when an identifier is assigned to
	// a part order that already carries one.
	ErrPartOrderAlreadyPersisted = errors.New("part order already has an identifier assigned")
)

// PartOrder is a purchase of parts against an open maintenance record. It is a
// child entity owned exclusively by its Maintenance aggregate; part orders are
// created through Maintenance.OrderParts and never exist on their own.
type PartOrder struct {
	// id is assigned by the store on first persist; zero means unpersisted
	id int64

	// maintenanceID backs-references the owning maintenance record
	maintenanceID int64

	purchaseCardNum string
	totalAmount     float64
	purchasedOn     time.Time

	// installedOn is set once the part is fitted, nil until then
	installedOn *time.Time

	guard guard.ConstructorGuard
}

// NewPartOrder creates a part order for the given purchase. The purchase card
// number is required and the amount must be non-negative.
func NewPartOrder(purchaseCardNum string, totalAmount float64, purchasedOn time.Time) (*PartOrder, error) {
	p := &PartOrder{
		purchasedOn: purchasedOn,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setPurchaseCardNum(purchaseCardNum),
		p.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartOrder reconstructs a part order from persistence.
func RestorePartOrder(
	id, maintenanceID int64,
	purchaseCardNum string,
	totalAmount float64,
	purchasedOn time.Time,
	installedOn *time.Time,
) (*PartOrder, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	if maintenanceID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"maintenanceId",
			fmt.Errorf("%d is not a valid identifier", maintenanceID),
		)
	}

	p := &PartOrder{
		id:            id,
		maintenanceID: maintenanceID,
		purchasedOn:   purchasedOn,
		installedOn:   installedOn,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setPurchaseCardNum(purchaseCardNum),
		p.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the PartOrder instance was properly constructed.
func (p *PartOrder) Validate() error {
	if p == nil {
		return ErrPartOrderIsNotConstructed
	}
	return p.guard.Validate(ErrPartOrderIsNotConstructed)
}

// ID returns the store-assigned identifier, zero if the part order is unpersisted.
func (p *PartOrder) ID() int64 {
	return p.id
}

// AssignID records the store-assigned identifier after the first persist.
func (p *PartOrder) AssignID(id int64) error {
	if p.id != 0 {
		return ErrPartOrderAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	p.id = id
	return nil
}

// MaintenanceID returns the identifier of the owning maintenance record.
func (p *PartOrder) MaintenanceID() int64 {
	return p.maintenanceID
}

// PurchaseCardNum returns the purchase card the parts were bought with.
func (p *PartOrder) PurchaseCardNum() string {
	return p.purchaseCardNum
}

// TotalAmount returns the purchase total.
func (p *PartOrder) TotalAmount() float64 {
	return p.totalAmount
}

// PurchasedOn returns when the parts were purchased.
func (p *PartOrder) PurchasedOn() time.Time {
	return p.purchasedOn
}

// InstalledOn returns when the parts were fitted, nil if still outstanding.
func (p *PartOrder) InstalledOn() *time.Time {
	return p.installedOn
}

// attachTo back-references the owning maintenance record once it has an
// identifier assigned.
func (p *PartOrder) attachTo(maintenanceID int64) {
	p.maintenanceID = maintenanceID
}

func (p *PartOrder) setPurchaseCardNum(purchaseCardNum string) error {
	if purchaseCardNum == "" {
		return errs.NewValueIsRequiredError("purchaseCardNum")
	}
	p.purchaseCardNum = purchaseCardNum
	return nil
}

func (p *PartOrder) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%f is negative", totalAmount),
		)
	}
	p.totalAmount = totalAmount
	return nil
}
