package queries

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery lists the orders of a restaurant, newest first.
// With activeOnly only Searching and InTransit orders are returned.
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.ID
	activeOnly   bool

	guard guard.ConstructorGuard
}

func NewGetRestaurantOrdersQuery(restaurantID kernel.ID, activeOnly bool) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		activeOnly:   activeOnly,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

func (q GetRestaurantOrdersQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

func (q GetRestaurantOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}
