package restaurantrepo

import (
	"context"
	"errors"

	"courierservice/internal/adapters/out/postgres/storeerr"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/restaurant"
	"courierservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add inserts a new restaurant. Names are unique.
func (r *GormRestaurantRepository) Add(
	ctx context.Context,
	aggregate *restaurant.Restaurant,
) (*restaurant.Restaurant, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if storeerr.IsUniqueViolation(err) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("restaurant name", dto.Name, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves a restaurant by id.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
