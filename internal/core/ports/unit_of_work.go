package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every lifecycle
// operation runs as one unit of work: all row changes across vehicles,
// maintenance records, and part orders commit together or not at all.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// VehicleRepository returns a VehicleRepository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// MaintenanceRepository returns a MaintenanceRepository bound to the current transaction.
	MaintenanceRepository() MaintenanceRepository

	// Changes returns the ids of all records written through this unit of
	// work, grouped by entity type. Read it after Commit to notify the
	// orchestrator about exactly what the transaction touched.
	Changes() ChangeSet
}
