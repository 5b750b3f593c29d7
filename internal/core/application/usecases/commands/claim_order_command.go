package commands

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a courier taking a Searching order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	orderID   kernel.ID

	guard guard.ConstructorGuard
}

func NewClaimOrderCommand(courierID, orderID kernel.ID) (ClaimOrderCommand, error) {
	if err := errors.Join(courierID.Validate(), orderID.Validate()); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c ClaimOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
