package postgres

import (
	"context"

	"fleet/internal/adapters/out/postgres/vehiclerepo"
	"fleet/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

// SeedVehicles inserts a starter fleet when the vehicles table is empty, so a
// fresh deployment has data to serve before the first registration arrives.
// Repeated startups are safe: a non-empty table is left untouched.
func SeedVehicles(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&vehiclerepo.VehicleDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type starter struct {
		make, model string
		year        int
		vin, color  string
	}

	starters := []starter{
		{"Ford", "Transit", 2021, "1FTBW2CM5MKA00001", "White"},
		{"Mercedes-Benz", "Sprinter", 2022, "W1Y4ECHY5NT000002", "Silver"},
		{"Volkswagen", "Crafter", 2020, "WV1ZZZSYZL9000003", "Blue"},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		uow := &GormUnitOfWork{db: tx, tx: tx}
		repo := vehiclerepo.NewGormVehicleRepository(tx, uow)
		for _, s := range starters {
			v, err := vehicle.NewVehicle(s.make, s.model, s.year, s.vin, s.color)
			if err != nil {
				return err
			}
			if err = repo.Add(ctx, v); err != nil {
				return err
			}
		}
		return nil
	})
}
