package order

import (
	"errors"
	"fmt"
	"time"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotOwnedByCourier is returned when a courier tries to complete somebody else's order.
	ErrOrderIsNotOwnedByCourier = errors.New("order is not assigned to this courier")
)

// Order is the aggregate root of the order ledger. It references exactly one
// restaurant and one user and, once claimed, exactly one courier.
//
// Order follows these invariants:
//   - Restaurant and user references are mandatory and never change
//   - Status moves only Searching -> InTransit -> Delivered
//   - The courier is bound once, on claim, and never reassigned
//   - The end time is set once, on delivery
//
// Order also remembers the status it was loaded (or created) with. Repositories
// use it as the expected current status in conditional updates, so a
// concurrent transition of the same row is detected instead of overwritten.
type Order struct {
	id           kernel.ID
	restaurantID kernel.ID
	userID       kernel.ID

	// courierID is nil until the order is claimed
	courierID *kernel.ID

	status          Status
	persistedStatus Status

	startTime time.Time

	// endTime is nil until the order is delivered
	endTime *time.Time

	isConstructed bool
}

// NewOrder creates an order in Searching status. The id stays zero until the
// repository assigns one.
//
// Example:
//
//	o, err := order.NewOrder(restaurantID, userID, clock.Now())
//	if err != nil {
//	    // invalid references or zero time
//	}
func NewOrder(restaurantID, userID kernel.ID, startTime time.Time) (*Order, error) {
	o := &Order{
		status:        Searching,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setRestaurantID(restaurantID),
		o.setUserID(userID),
		o.setStartTime(startTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order, checking status consistency with
// the courier binding and the end time.
func RestoreOrder(
	id, restaurantID, userID kernel.ID,
	courierID *kernel.ID,
	status Status,
	startTime time.Time,
	endTime *time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setUserID(userID),
		o.setStartTime(startTime),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
		status.ValidateCanHaveEndTime(endTime != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}
	if endTime != nil {
		end := *endTime
		o.endTime = &end
	}

	o.status = status
	o.persistedStatus = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two persisted orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id == other.id
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

func (o *Order) UserID() kernel.ID {
	return o.userID
}

// Courier returns the bound courier's ID, or nil while the order is searching.
func (o *Order) Courier() *kernel.ID {
	return o.courierID
}

func (o *Order) Status() Status {
	return o.status
}

// PersistedStatus returns the status the order had when it was loaded.
// Unknown for orders that were never stored.
func (o *Order) PersistedStatus() Status {
	return o.persistedStatus
}

func (o *Order) StartTime() time.Time {
	return o.startTime
}

// EndTime returns the delivery time, or nil if the order is not delivered.
func (o *Order) EndTime() *time.Time {
	return o.endTime
}

// Claim binds the courier and moves the order to InTransit.
//
// Returns an errs.ValueIsInvalidError if the order is not Searching; in that
// case the order is left untouched.
func (o *Order) Claim(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete moves the order to Delivered and records the delivery time.
//
// The order must be InTransit and bound to courierID, otherwise
// ErrOrderIsNotOwnedByCourier or an errs.ValueIsInvalidError is returned.
func (o *Order) Complete(courierID kernel.ID, at time.Time) error {
	if o.courierID == nil || *o.courierID != courierID {
		return ErrOrderIsNotOwnedByCourier
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("end time")
	}
	if at.Before(o.startTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"end time is invalid",
			fmt.Errorf("%s is before start time %s", at.Format(time.RFC3339), o.startTime.Format(time.RFC3339)),
		)
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.endTime = &at
	return nil
}

// DeliveryDuration is the time between placement and delivery, zero for undelivered orders.
func (o *Order) DeliveryDuration() time.Duration {
	if o.endTime == nil {
		return 0
	}
	return o.endTime.Sub(o.startTime)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("start time")
	}
	o.startTime = startTime
	return nil
}
