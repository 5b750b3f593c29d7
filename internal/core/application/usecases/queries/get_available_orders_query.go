package queries

import (
	"errors"
	"time"

	"courierservice/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery lists every Searching order, oldest first.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// AvailableOrder carries what a courier needs to decide on a claim: where to
// pick the order up and where to bring it.
type AvailableOrder struct {
	ID                int64
	StartTime         time.Time
	RestaurantID      int64
	RestaurantName    string
	RestaurantAddress Address
	UserAddress       Address
}
