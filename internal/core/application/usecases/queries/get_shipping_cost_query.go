package queries

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrGetShippingCostQueryIsNotConstructed = errors.New(
	"GetShippingCostQuery must be created via NewGetShippingCostQuery constructor",
)

// GetShippingCostQuery prices a delivery from a restaurant to a user's address
// without placing an order.
type GetShippingCostQuery struct {
	userID       kernel.ID
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetShippingCostQuery(userID, restaurantID kernel.ID) (GetShippingCostQuery, error) {
	if err := errors.Join(userID.Validate(), restaurantID.Validate()); err != nil {
		return GetShippingCostQuery{}, err
	}
	return GetShippingCostQuery{
		userID:       userID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetShippingCostQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingCostQueryIsNotConstructed)
}

func (q GetShippingCostQuery) UserID() kernel.ID {
	return q.userID
}

func (q GetShippingCostQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}
