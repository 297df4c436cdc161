package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/core/ports"
)

// OrderPartsCommandHandler records a parts purchase against a maintenance
// record. The part-order insert and the status update commit together; an
// open record moves to waiting-for-parts while a completed record keeps its
// terminal status.
type OrderPartsCommandHandler struct {
	uowFactory MaintenanceUoWFactory
	notifier   ports.ChangeNotifier
}

// NewOrderPartsCommandHandler creates a handler for parts purchases.
func NewOrderPartsCommandHandler(
	uowFactory MaintenanceUoWFactory,
	notifier ports.ChangeNotifier,
) OrderPartsCommandHandler {
	return OrderPartsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the parts purchase. Returns ObjectNotFoundError when the
// maintenance id does not resolve.
func (h *OrderPartsCommandHandler) Handle(
	ctx context.Context,
	cmd OrderPartsCommand,
) (*maintenance.PartOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	maintenances := uow.MaintenanceRepository()
	m, err := maintenances.Get(ctx, cmd.MaintenanceID())
	if err != nil {
		return nil, err
	}

	p, err := m.OrderParts(cmd.PurchaseCardNum(), cmd.TotalAmount(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = maintenances.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, uow.Changes())
	return p, nil
}
