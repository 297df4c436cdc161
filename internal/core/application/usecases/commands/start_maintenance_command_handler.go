package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/core/ports"
)

// StartMaintenanceCommandHandler opens a maintenance record against an active
// vehicle. The vehicle leaves the active pool and the record is inserted in
// the same transaction, which also enforces at most one open record per
// vehicle: the row update only applies while the vehicle is still flagged
// active, so a concurrent start loses and rolls back.
type StartMaintenanceCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewStartMaintenanceCommandHandler creates a handler for opening maintenance records.
func NewStartMaintenanceCommandHandler(
	uowFactory UoWFactory,
	notifier ports.ChangeNotifier,
) StartMaintenanceCommandHandler {
	return StartMaintenanceCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the start command. Returns ObjectNotFoundError when the
// vehicle does not resolve and DomainRuleViolationError when it is inactive
// or retired.
func (h *StartMaintenanceCommandHandler) Handle(
	ctx context.Context,
	cmd StartMaintenanceCommand,
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

	vehicles := uow.VehicleRepository()
	v, err := vehicles.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	if err = v.BeginService(); err != nil {
		return nil, err
	}

	m, err := maintenance.NewMaintenance(
		cmd.VehicleID(),
		cmd.Technician(),
		cmd.MaintenanceType(),
		cmd.NotesOpen(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = vehicles.UpdateForServiceStart(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.MaintenanceRepository().Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, uow.Changes())
	return m, nil
}
