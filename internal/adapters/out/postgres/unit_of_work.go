// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work pattern maintains a list of records affected by a
// business transaction and coordinates writing out changes and resolving
// concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Change tracking for post-commit orchestrator notifications
//   - Proper isolation between concurrent operations
//   - Automatic rollback on transaction failures
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.VehicleRepository().Add(ctx, vehicle); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multi-Repository Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// All operations within same transaction
//	if err := uow.VehicleRepository().Update(ctx, vehicle); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.MaintenanceRepository().Add(ctx, record); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//
//	// Report exactly what the transaction touched
//	notifier.Notify(ctx, uow.Changes())
//
// Error Handling Best Practices:
//   - Always handle Begin() errors
//   - Explicit rollback on business logic errors
//   - Check commit errors for transaction conflicts
//   - Read Changes() only after a successful Commit()
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Conditional updates guard high-contention rows such as the vehicle
//     active flag
package postgres

import (
	"context"

	"fleet/internal/adapters/out/postgres/maintenancerepo"
	"fleet/internal/adapters/out/postgres/vehiclerepo"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and change tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions and tracks written record
// ids for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities to ensure data consistency and proper
// rollback handling.
//
// The unit of work records the id of every row written through its
// repositories, so that after a successful commit the caller can tell the
// orchestrator exactly which vehicles, maintenance records, and part orders
// changed.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	changes ports.ChangeSet
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Database returns to its state before the transaction began.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// VehicleRepository provides access to vehicle persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
//
// The returned repository automatically reports every vehicle row it writes,
// making the ids available via Changes().
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return vehiclerepo.NewGormVehicleRepository(db, uow)
}

// MaintenanceRepository provides access to maintenance persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
//
// The returned repository automatically reports every maintenance and part
// order row it writes, making the ids available via Changes().
func (uow *GormUnitOfWork) MaintenanceRepository() ports.MaintenanceRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return maintenancerepo.NewGormMaintenanceRepository(db, uow)
}

// TrackVehicleChanged registers a written vehicle row within this unit of work.
// This method is called by repository implementations when rows are inserted
// or updated.
func (uow *GormUnitOfWork) TrackVehicleChanged(id int64) {
	uow.changes.VehicleIDs = appendUnique(uow.changes.VehicleIDs, id)
}

// TrackMaintenanceChanged registers a written maintenance row within this unit of work.
func (uow *GormUnitOfWork) TrackMaintenanceChanged(id int64) {
	uow.changes.MaintenanceIDs = appendUnique(uow.changes.MaintenanceIDs, id)
}

// TrackPartOrderChanged registers a written part order row within this unit of work.
func (uow *GormUnitOfWork) TrackPartOrderChanged(id int64) {
	uow.changes.PartOrderIDs = appendUnique(uow.changes.PartOrderIDs, id)
}

// Changes returns the ids of all records written through this unit of work.
// The same row written twice within one transaction is reported once.
func (uow *GormUnitOfWork) Changes() ports.ChangeSet {
	return uow.changes
}

func appendUnique(ids []int64, id int64) []int64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
