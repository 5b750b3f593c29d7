package commands

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a courier handing over an order in transit.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	orderID   kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(courierID, orderID kernel.ID) (CompleteOrderCommand, error) {
	if err := errors.Join(courierID.Validate(), orderID.Validate()); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
