// Package restaurant provides the Restaurant aggregate of the restaurant registry.
package restaurant

import (
	"errors"
	"math"
	"strings"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"
	"courierservice/internal/pkg/guard"
)

const MaxNameLength = 128

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is an order origin. Its name is unique across the registry; the
// store enforces that with a unique index.
type Restaurant struct {
	id                      kernel.ID
	name                    string
	address                 kernel.Address
	openingTime             kernel.TimeOfDay
	closingTime             kernel.TimeOfDay
	deliveryDurationMinutes int
	guard                   guard.ConstructorGuard
}

// NewRestaurant validates a restaurant profile. deliveryDurationMinutes is the
// estimated delivery time shown to users and must be positive.
func NewRestaurant(
	name string,
	address kernel.Address,
	openingTime, closingTime kernel.TimeOfDay,
	deliveryDurationMinutes int,
) (*Restaurant, error) {
	r := &Restaurant{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setName(name),
		r.setAddress(address),
		r.setHours(openingTime, closingTime),
		r.setDeliveryDuration(deliveryDurationMinutes),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func RestoreRestaurant(
	id kernel.ID,
	name string,
	address kernel.Address,
	openingTime, closingTime kernel.TimeOfDay,
	deliveryDurationMinutes int,
) (*Restaurant, error) {
	r, err := NewRestaurant(name, address, openingTime, closingTime, deliveryDurationMinutes)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	r.id = id
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.ID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() kernel.Address {
	return r.address
}

func (r *Restaurant) OpeningTime() kernel.TimeOfDay {
	return r.openingTime
}

func (r *Restaurant) ClosingTime() kernel.TimeOfDay {
	return r.closingTime
}

func (r *Restaurant) DeliveryDurationMinutes() int {
	return r.deliveryDurationMinutes
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len([]rune(name)) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len([]rune(name)), 1, MaxNameLength)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}

// setHours accepts closing before opening: such restaurants work past midnight.
func (r *Restaurant) setHours(openingTime, closingTime kernel.TimeOfDay) error {
	if err := errors.Join(openingTime.Validate(), closingTime.Validate()); err != nil {
		return err
	}
	r.openingTime = openingTime
	r.closingTime = closingTime
	return nil
}

func (r *Restaurant) setDeliveryDuration(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsOutOfRangeError("delivery duration", minutes, 1, math.MaxInt)
	}
	r.deliveryDurationMinutes = minutes
	return nil
}
