package commands

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/model/order"
	"courierservice/internal/core/domain/services"
	"courierservice/internal/core/ports"
	"courierservice/internal/pkg/errs"
)

// PlacedOrder is the result of a successful placement.
type PlacedOrder struct {
	Order        *order.Order
	ShippingCost int
}

// PlaceOrderCommandHandler inserts a Searching order for a user and prices
// its delivery.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, clock, services.NewShippingEstimator())
//	cmd, _ := NewPlaceOrderCommand(userID, restaurantID)
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrRestaurantNotFound) {
//	    // nothing was stored
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	clock      ports.Clock
	estimator  services.ShippingEstimator
}

func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	clock ports.Clock,
	estimator services.ShippingEstimator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		estimator:  estimator,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (PlacedOrder, error) {
	if err := command.Validate(); err != nil {
		return PlacedOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlacedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PlacedOrder{}, ErrRestaurantNotFound
	}
	if err != nil {
		return PlacedOrder{}, err
	}

	customer, err := uow.UserRepository().Get(ctx, command.UserID())
	if err != nil {
		return PlacedOrder{}, err
	}

	aggregate, err := order.NewOrder(restaurant.ID(), customer.ID(), h.clock.Now())
	if err != nil {
		return PlacedOrder{}, err
	}

	saved, err := uow.OrderRepository().Add(ctx, aggregate)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PlacedOrder{}, ErrRestaurantNotFound
	}
	if err != nil {
		return PlacedOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlacedOrder{}, err
	}

	return PlacedOrder{
		Order:        saved,
		ShippingCost: h.estimator.Estimate(customer.Address(), restaurant.Address()),
	}, nil
}
