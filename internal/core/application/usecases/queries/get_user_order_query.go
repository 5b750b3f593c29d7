package queries

import (
	"errors"
	"time"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrGetUserOrderQueryIsNotConstructed = errors.New(
	"GetUserOrderQuery must be created via NewGetUserOrderQuery constructor",
)

// GetUserOrderQuery fetches one of the user's own orders.
type GetUserOrderQuery struct {
	userID  kernel.ID
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserOrderQuery(userID, orderID kernel.ID) (GetUserOrderQuery, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return GetUserOrderQuery{}, err
	}
	return GetUserOrderQuery{
		userID:  userID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrderQueryIsNotConstructed)
}

func (q GetUserOrderQuery) UserID() kernel.ID {
	return q.userID
}

func (q GetUserOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// UserOrderDetail is the order as seen by its customer. CourierName stays nil
// until the order is claimed. DeliveryDurationMinutes is the restaurant's
// estimate, not the measured duration.
type UserOrderDetail struct {
	ID                      int64
	Status                  string
	RestaurantName          string
	StartTime               time.Time
	EndTime                 *time.Time
	CourierName             *string
	DeliveryDurationMinutes int
}
