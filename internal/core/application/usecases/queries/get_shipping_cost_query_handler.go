package queries

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/services"
	"courierservice/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetShippingCostQueryHandler struct {
	db        *gorm.DB
	estimator services.ShippingEstimator
}

func NewGetShippingCostQueryHandler(db *gorm.DB, estimator services.ShippingEstimator) GetShippingCostQueryHandler {
	return GetShippingCostQueryHandler{db: db, estimator: estimator}
}

type addressRow struct {
	City        string
	Street      string
	HouseNumber string
}

func (h GetShippingCostQueryHandler) Handle(ctx context.Context, query GetShippingCostQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	restaurantAddress, err := h.address(ctx, "restaurants", query.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, ErrRestaurantNotFound
	}
	if err != nil {
		return 0, err
	}

	userAddress, err := h.address(ctx, "users", query.UserID())
	if err != nil {
		return 0, err
	}

	return h.estimator.Estimate(userAddress, restaurantAddress), nil
}

func (h GetShippingCostQueryHandler) address(ctx context.Context, table string, id kernel.ID) (kernel.Address, error) {
	var rows []addressRow
	err := h.db.WithContext(ctx).
		Table(table).
		Select("city", "street", "house_number").
		Where("id = ?", id.Int64()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return kernel.Address{}, err
	}
	if len(rows) == 0 {
		return kernel.Address{}, errs.NewObjectNotFoundError(table, id)
	}
	return kernel.NewAddress(rows[0].City, rows[0].Street, rows[0].HouseNumber)
}
