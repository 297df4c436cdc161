package maintenancerepo

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaintenanceRepository implements MaintenanceRepository using GORM.
type GormMaintenanceRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker collects the ids of records written within the unit of work.
type changeTracker interface {
	TrackMaintenanceChanged(id int64)
	TrackPartOrderChanged(id int64)
}

// NewGormMaintenanceRepository creates a new GORM maintenance repository.
func NewGormMaintenanceRepository(db *gorm.DB, tracker changeTracker) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new maintenance record and any part orders it already owns,
// assigning generated identifiers as rows are inserted.
func (r *GormMaintenanceRepository) Add(ctx context.Context, aggregate *maintenance.Maintenance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AssignID(dto.ID); err != nil {
			return err
		}
	}

	if err := r.insertNewPartOrders(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackMaintenanceChanged(dto.ID)
	return nil
}

// Update saves an existing maintenance record and inserts any part orders
// added since it was loaded.
func (r *GormMaintenanceRepository) Update(ctx context.Context, aggregate *maintenance.Maintenance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces zero-valued columns to be written.
	result := r.db.WithContext(ctx).
		Model(&MaintenanceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("maintenance", dto.ID)
	}

	if err := r.insertNewPartOrders(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackMaintenanceChanged(dto.ID)
	return nil
}

// Get retrieves a maintenance record with its part orders.
func (r *GormMaintenanceRepository) Get(ctx context.Context, id int64) (*maintenance.Maintenance, error) {
	var dto MaintenanceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("maintenance", id)
		}
		return nil, err
	}

	var partOrderDTOs []PartOrderDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&partOrderDTOs, "maintenance_id = ?", id).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, partOrderDTOs)
}

// insertNewPartOrders persists part orders that do not have an identifier
// yet. Existing part orders are append-only and never rewritten.
func (r *GormMaintenanceRepository) insertNewPartOrders(
	ctx context.Context,
	aggregate *maintenance.Maintenance,
) error {
	for _, p := range aggregate.PartOrders() {
		if p.ID() != 0 {
			continue
		}

		dto := partOrderFromDomain(p)
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}

		if err := p.AssignID(dto.ID); err != nil {
			return err
		}

		r.tracker.TrackPartOrderChanged(dto.ID)
	}

	return nil
}
