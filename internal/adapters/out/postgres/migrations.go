package postgres

import (
	"context"

	"courierservice/internal/adapters/out/postgres/courierrepo"
	"courierservice/internal/adapters/out/postgres/orderrepo"
	"courierservice/internal/adapters/out/postgres/restaurantrepo"
	"courierservice/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of every repository. Referenced tables
// are migrated before orders so the foreign keys can be created.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&userrepo.UserDTO{},
		&courierrepo.CourierDTO{},
		&restaurantrepo.RestaurantDTO{},
		&orderrepo.OrderDTO{},
	)
}
