package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/core/ports"
)

// CompleteMaintenanceCommandHandler closes out a maintenance record and
// returns the vehicle to the active pool in the same transaction. The
// vehicle's last service date is always updated, but a vehicle retired while
// under maintenance stays inactive: retirement is terminal and completion
// never reactivates it. Completing an already completed record is a safe
// no-op on the maintenance side.
type CompleteMaintenanceCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewCompleteMaintenanceCommandHandler creates a handler for completing maintenance.
func NewCompleteMaintenanceCommandHandler(
	uowFactory UoWFactory,
	notifier ports.ChangeNotifier,
) CompleteMaintenanceCommandHandler {
	return CompleteMaintenanceCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command. Returns ObjectNotFoundError when
// the maintenance id does not resolve.
func (h *CompleteMaintenanceCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteMaintenanceCommand,
) (*maintenance.Maintenance, error) {
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

	vehicles := uow.VehicleRepository()
	v, err := vehicles.Get(ctx, m.VehicleID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m.Complete(cmd.NotesClose(), now)
	v.ReturnFromService(now)

	if err = maintenances.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = vehicles.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, uow.Changes())
	return m, nil
}
