package commands

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a user ordering from a restaurant.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.ID
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(userID, restaurantID kernel.ID) (PlaceOrderCommand, error) {
	if err := errors.Join(userID.Validate(), restaurantID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		userID:       userID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c PlaceOrderCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}
