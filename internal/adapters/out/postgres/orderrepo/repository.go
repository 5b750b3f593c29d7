package orderrepo

import (
	"context"
	"errors"

	"courierservice/internal/adapters/out/postgres/storeerr"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/order"
	"courierservice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order. A restaurant or user missing from the store is
// reported as not found and no row is created.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if storeerr.IsForeignKeyViolation(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("restaurant", dto.RestaurantID, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update writes the status, courier and end time of a loaded order. The row is
// matched on both id and the status the order was loaded with, so only one of
// several concurrent transitions of the same order succeeds.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, aggregate.PersistedStatus().String()).
		Updates(map[string]any{
			"status":     dto.Status,
			"courier_id": dto.CourierID,
			"end_time":   dto.EndTime,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order in status "+aggregate.PersistedStatus().String(),
			aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasInTransitForCourier reports whether the courier has an order in transit.
func (r *GormOrderRepository) HasInTransitForCourier(ctx context.Context, courierID kernel.ID) (bool, error) {
	if err := courierID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("courier_id = ? AND status = ?", courierID.Int64(), order.InTransit.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
