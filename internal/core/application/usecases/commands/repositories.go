// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and a change notification after the commit.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	// Changes reports the record ids written within the transaction so
	// handlers can notify the orchestrator after a successful commit.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		Changes() ports.ChangeSet
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// MaintenanceRepoFactory provides access to the maintenance repository within a transaction.
	MaintenanceRepoFactory interface {
		MaintenanceRepository() ports.MaintenanceRepository
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// MaintenanceUoW manages transactions for maintenance-only operations.
	MaintenanceUoW interface {
		TxManager
		MaintenanceRepoFactory
	}

	// MaintenanceUoWFactory creates new maintenance unit of work instances.
	MaintenanceUoWFactory interface {
		Create() MaintenanceUoW
	}

	// UoW manages transactions spanning both vehicle and maintenance aggregates.
	// Used by commands that must flip vehicle availability and touch a
	// maintenance record in the same atomic step.
	UoW interface {
		TxManager
		VehicleRepoFactory
		MaintenanceRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
