package cmd

import (
	"log/slog"
	"os"

	"fleet/internal/adapters/out/orchestrator"
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.ChangeNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var notifier ports.ChangeNotifier = orchestrator.NewNoopNotifier()
	if configs.OrchestratorURL != "" {
		notifier = orchestrator.NewNotifier(configs.OrchestratorURL, configs.OrchestratorAPIKey, logger)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVehicleCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRetireVehicleCommandHandler() commands.RetireVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetireVehicleCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateStartMaintenanceCommandHandler() commands.StartMaintenanceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartMaintenanceCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateOrderPartsCommandHandler() commands.OrderPartsCommandHandler {
	var f commands.MaintenanceUoWFactory = FuncMaintenanceUoWFactory(func() commands.MaintenanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOrderPartsCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCompleteMaintenanceCommandHandler() commands.CompleteMaintenanceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteMaintenanceCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMaintenancesQueryHandler() queries.ListMaintenancesQueryHandler {
	return queries.NewListMaintenancesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPartOrdersQueryHandler() queries.ListPartOrdersQueryHandler {
	return queries.NewListPartOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFleetSyncQueryHandler() queries.FleetSyncQueryHandler {
	return queries.NewFleetSyncQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOpenMaintenanceReportQueryHandler() queries.OpenMaintenanceReportQueryHandler {
	return queries.NewOpenMaintenanceReportQueryHandler(c.gormDB)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncMaintenanceUoWFactory func() commands.MaintenanceUoW

func (f FuncMaintenanceUoWFactory) Create() commands.MaintenanceUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
