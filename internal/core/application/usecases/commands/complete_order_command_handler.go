package commands

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/services"
	"courierservice/internal/core/ports"
	"courierservice/internal/pkg/errs"
)

// CompleteOrderCommandHandler delivers an order: the order becomes Delivered
// with the current time as end time and the courier becomes available again.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	lifecycle  services.DeliveryLifecycle
}

func NewCompleteOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		lifecycle:  services.NewDeliveryLifecycle(),
	}
}

// Handle returns ErrOrderNotFound when the order does not exist, is not in
// transit or is delivered by another courier.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	c, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	err = h.lifecycle.Complete(o, c, h.clock.Now())
	if errors.Is(err, services.ErrOrderIsNotCompletable) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	err = orderRepo.Update(ctx, o)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
