package commands

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/ports"
)

// RetireVehicleCommandHandler handles permanent withdrawal of a vehicle.
// Retirement is terminal and idempotent: re-retiring an already retired
// vehicle changes nothing state-wise but still notifies the orchestrator.
type RetireVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	notifier   ports.ChangeNotifier
}

// NewRetireVehicleCommandHandler creates a handler for vehicle retirement.
func NewRetireVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	notifier ports.ChangeNotifier,
) RetireVehicleCommandHandler {
	return RetireVehicleCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the retirement command. Returns ObjectNotFoundError when
// the vehicle id does not resolve.
func (h *RetireVehicleCommandHandler) Handle(
	ctx context.Context,
	cmd RetireVehicleCommand,
) (*vehicle.Vehicle, error) {
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

	v.Retire()

	if err = vehicles.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, uow.Changes())
	return v, nil
}
