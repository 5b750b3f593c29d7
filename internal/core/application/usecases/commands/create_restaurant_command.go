package commands

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant profile. Only format checks
// happen here; the business rules live in restaurant.NewRestaurant.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	name                    string
	address                 kernel.Address
	openingTime             kernel.TimeOfDay
	closingTime             kernel.TimeOfDay
	deliveryDurationMinutes int

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	name string,
	address kernel.Address,
	openingTime, closingTime kernel.TimeOfDay,
	deliveryDurationMinutes int,
) (CreateRestaurantCommand, error) {
	if err := errors.Join(
		address.Validate(),
		openingTime.Validate(),
		closingTime.Validate(),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		name:                    name,
		address:                 address,
		openingTime:             openingTime,
		closingTime:             closingTime,
		deliveryDurationMinutes: deliveryDurationMinutes,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) Address() kernel.Address {
	return c.address
}

func (c CreateRestaurantCommand) OpeningTime() kernel.TimeOfDay {
	return c.openingTime
}

func (c CreateRestaurantCommand) ClosingTime() kernel.TimeOfDay {
	return c.closingTime
}

func (c CreateRestaurantCommand) DeliveryDurationMinutes() int {
	return c.deliveryDurationMinutes
}
