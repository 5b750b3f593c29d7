package queries

import (
	"errors"
	"time"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrGetRestaurantOrderQueryIsNotConstructed = errors.New(
	"GetRestaurantOrderQuery must be created via NewGetRestaurantOrderQuery constructor",
)

// GetRestaurantOrderQuery fetches one order of a restaurant together with the
// customer and, once claimed, the courier.
type GetRestaurantOrderQuery struct {
	restaurantID kernel.ID
	orderID      kernel.ID

	guard guard.ConstructorGuard
}

func NewGetRestaurantOrderQuery(restaurantID, orderID kernel.ID) (GetRestaurantOrderQuery, error) {
	if err := errors.Join(restaurantID.Validate(), orderID.Validate()); err != nil {
		return GetRestaurantOrderQuery{}, err
	}
	return GetRestaurantOrderQuery{
		restaurantID: restaurantID,
		orderID:      orderID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrderQueryIsNotConstructed)
}

func (q GetRestaurantOrderQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

func (q GetRestaurantOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// RestaurantOrderDetail is the order as seen by the restaurant.
type RestaurantOrderDetail struct {
	ID           int64
	Status       string
	StartTime    time.Time
	EndTime      *time.Time
	RestaurantID int64
	User         UserSnapshot
	Courier      *CourierSnapshot
}
