package services

import (
	"errors"
	"time"

	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/domain/model/order"
)

var (
	// ErrOrderIsNotClaimable is returned when the order left Searching before the claim.
	ErrOrderIsNotClaimable = errors.New("order is not claimable")
	// ErrOrderIsNotCompletable is returned when the order is not InTransit with this courier.
	ErrOrderIsNotCompletable = errors.New("order is not completable")
)

// DeliveryLifecycle applies lifecycle transitions to an order and its courier
// as one step. Every precondition of both aggregates is checked before
// anything is mutated, so a rejected transition leaves both untouched.
//
// Example usage:
//
//	lifecycle := services.NewDeliveryLifecycle()
//	if err := lifecycle.Claim(o, c); err != nil {
//	    return err
//	}
//	// persist o and c in the same transaction
type DeliveryLifecycle struct{}

func NewDeliveryLifecycle() DeliveryLifecycle {
	return DeliveryLifecycle{}
}

// Claim binds the courier to a Searching order and marks the courier busy.
//
// Returns:
//   - courier.ErrCourierIsBusy if the courier already delivers something
//   - ErrOrderIsNotClaimable if the order is not Searching
func (DeliveryLifecycle) Claim(o *order.Order, c *courier.Courier) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}
	if !c.IsAvailable() {
		return courier.ErrCourierIsBusy
	}
	if o.Status() != order.Searching {
		return ErrOrderIsNotClaimable
	}

	if err := o.Claim(c.ID()); err != nil {
		return errors.Join(ErrOrderIsNotClaimable, err)
	}
	return c.Occupy()
}

// Complete delivers an InTransit order bound to the courier, records at as the
// delivery time and releases the courier.
//
// Returns ErrOrderIsNotCompletable if the order is not InTransit or belongs to
// someone else.
func (DeliveryLifecycle) Complete(o *order.Order, c *courier.Courier, at time.Time) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}
	if o.Status() != order.InTransit || o.Courier() == nil || *o.Courier() != c.ID() {
		return ErrOrderIsNotCompletable
	}

	if err := o.Complete(c.ID(), at); err != nil {
		return err
	}
	if err := c.Release(); err != nil {
		return err
	}
	return nil
}
