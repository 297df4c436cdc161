package commands

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrOrderPartsCommandIsNotConstructed = errors.New(
		"OrderPartsCommand must be created via NewOrderPartsCommand constructor",
	)
)

// OrderPartsCommand represents a parts purchase against a maintenance record.
type OrderPartsCommand struct {
	maintenanceID   int64
	purchaseCardNum string
	totalAmount     float64

	guard guard.ConstructorGuard
}

// NewOrderPartsCommand creates a command to record a parts purchase.
// Validates the maintenance identifier, the purchase card number, and that
// the amount is non-negative.
func NewOrderPartsCommand(maintenanceID int64, purchaseCardNum string, totalAmount float64) (OrderPartsCommand, error) {
	cmd := OrderPartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMaintenanceID(maintenanceID),
		cmd.setPurchaseCardNum(purchaseCardNum),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return OrderPartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OrderPartsCommand) Validate() error {
	return c.guard.Validate(ErrOrderPartsCommandIsNotConstructed)
}

// MaintenanceID returns the identifier of the maintenance record to charge.
func (c OrderPartsCommand) MaintenanceID() int64 {
	return c.maintenanceID
}

// PurchaseCardNum returns the purchase card number.
func (c OrderPartsCommand) PurchaseCardNum() string {
	return c.purchaseCardNum
}

// TotalAmount returns the purchase total.
func (c OrderPartsCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *OrderPartsCommand) setMaintenanceID(maintenanceID int64) error {
	if maintenanceID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maintenanceId",
			fmt.Errorf("%d is not a valid identifier", maintenanceID),
		)
	}
	c.maintenanceID = maintenanceID
	return nil
}

func (c *OrderPartsCommand) setPurchaseCardNum(purchaseCardNum string) error {
	if purchaseCardNum == "" {
		return errs.NewValueIsRequiredError("purchaseCardNum")
	}
	c.purchaseCardNum = purchaseCardNum
	return nil
}

func (c *OrderPartsCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%f is negative", totalAmount),
		)
	}
	c.totalAmount = totalAmount
	return nil
}
