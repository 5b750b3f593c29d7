package ports

import (
	"context"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order ledger.
// Orders are never deleted.
type OrderRepository interface {
	// Add inserts a new order and returns it with the store-assigned id.
	// A missing restaurant or user yields errs.ErrObjectNotFound.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update writes a transition of a loaded order. The write is conditional on
	// the row still having aggregate.PersistedStatus(); when it does not (the
	// order was moved by a concurrent transaction) errs.ErrObjectNotFound is
	// returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// HasInTransitForCourier reports whether the courier currently delivers an order.
	HasInTransitForCourier(ctx context.Context, courierID kernel.ID) (bool, error)
}
