package queries

import (
	"errors"
	"time"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery returns the order a courier is delivering right now,
// or with allOrders their whole history, newest first.
type GetCourierOrdersQuery struct {
	courierID kernel.ID
	allOrders bool

	guard guard.ConstructorGuard
}

func NewGetCourierOrdersQuery(courierID kernel.ID, allOrders bool) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}
	return GetCourierOrdersQuery{
		courierID: courierID,
		allOrders: allOrders,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

func (q GetCourierOrdersQuery) CourierID() kernel.ID {
	return q.courierID
}

func (q GetCourierOrdersQuery) AllOrders() bool {
	return q.allOrders
}

type CourierOrder struct {
	ID                int64
	Status            string
	StartTime         time.Time
	EndTime           *time.Time
	RestaurantID      int64
	RestaurantName    string
	RestaurantAddress Address
	UserAddress       Address
}
