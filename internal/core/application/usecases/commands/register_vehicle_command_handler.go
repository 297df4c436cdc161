package commands

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/ports"
)

// RegisterVehicleCommandHandler handles the business logic for adding a
// vehicle to the fleet. New vehicles start active and non-retired.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	notifier   ports.ChangeNotifier
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
func NewRegisterVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	notifier ports.ChangeNotifier,
) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the vehicle registration command. On successful commit the
// orchestrator is notified of the new vehicle id.
func (h *RegisterVehicleCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterVehicleCommand,
) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(cmd.Make(), cmd.Model(), cmd.Year(), cmd.VIN(), cmd.Color())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, uow.Changes())
	return v, nil
}
