package ports

import (
	"context"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for the restaurant registry.
type RestaurantRepository interface {
	// Add inserts a new restaurant. A taken name yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) (*restaurant.Restaurant, error)

	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)
}
