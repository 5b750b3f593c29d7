package commands

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/domain/services"
	"courierservice/internal/pkg/errs"
)

// ClaimOrderCommandHandler moves a Searching order to InTransit, binds the
// courier and marks them busy, all in one transaction.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory)
//	cmd, _ := NewClaimOrderCommand(courierID, orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // missing, or claimed by somebody else first
//	case errors.Is(err, ErrCourierHasActiveOrder):
//	    // the courier must complete the current order first
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.DeliveryLifecycle
}

func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewDeliveryLifecycle(),
	}
}

// Handle checks that the courier has no order in transit before touching the
// order. Both updates are conditional on the loaded state, so losing a race
// against another claim surfaces as ErrOrderNotFound or ErrCourierHasActiveOrder
// and the transaction is rolled back.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
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

	c, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	busy, err := orderRepo.HasInTransitForCourier(ctx, c.ID())
	if err != nil {
		return err
	}
	if busy {
		return ErrCourierHasActiveOrder
	}

	o, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	err = h.lifecycle.Claim(o, c)
	switch {
	case errors.Is(err, services.ErrOrderIsNotClaimable):
		return ErrOrderNotFound
	case errors.Is(err, courier.ErrCourierIsBusy):
		return ErrCourierHasActiveOrder
	case err != nil:
		return err
	}

	err = orderRepo.Update(ctx, o)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	err = courierRepo.Update(ctx, c)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCourierHasActiveOrder
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
