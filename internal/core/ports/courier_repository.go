package ports

import (
	"context"

	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier accounts.
type CourierRepository interface {
	// Add inserts a new courier. A taken phone number yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *courier.Courier) (*courier.Courier, error)

	// Update writes the work status, conditional on the row still having
	// aggregate.PersistedWorkStatus(). A mismatch yields errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *courier.Courier) error

	Get(ctx context.Context, id kernel.ID) (*courier.Courier, error)

	GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*courier.Courier, error)
}
