package commands_test

import (
	"context"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the command handler tests.

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateForServiceStart(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) Add(ctx context.Context, aggregate *maintenance.Maintenance) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) Update(ctx context.Context, aggregate *maintenance.Maintenance) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) Get(ctx context.Context, id int64) (*maintenance.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.Maintenance), args.Error(1)
}

// MockUoW satisfies VehicleUoW, MaintenanceUoW and the cross-aggregate UoW.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Changes() ports.ChangeSet {
	args := m.Called()
	return args.Get(0).(ports.ChangeSet)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) MaintenanceRepository() ports.MaintenanceRepository {
	args := m.Called()
	return args.Get(0).(ports.MaintenanceRepository)
}

type MockVehicleUoWFactory struct {
	mock.Mock
}

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockMaintenanceUoWFactory struct {
	mock.Mock
}

func (m *MockMaintenanceUoWFactory) Create() commands.MaintenanceUoW {
	args := m.Called()
	return args.Get(0).(commands.MaintenanceUoW)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockChangeNotifier struct {
	mock.Mock
}

func (m *MockChangeNotifier) Notify(ctx context.Context, changes ports.ChangeSet) {
	m.Called(ctx, changes)
}
