package commands

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/model/restaurant"
	"courierservice/internal/pkg/errs"
)

// CreateRestaurantCommandHandler adds a restaurant to the registry.
// Restaurant names are unique.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	command CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := restaurant.NewRestaurant(
		command.Name(),
		command.Address(),
		command.OpeningTime(),
		command.ClosingTime(),
		command.DeliveryDurationMinutes(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saved, err := uow.RestaurantRepository().Add(ctx, aggregate)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return nil, ErrRestaurantAlreadyExists
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
