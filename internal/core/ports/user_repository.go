package ports

import (
	"context"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add inserts a new user. A taken phone number yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *user.User) (*user.User, error)

	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*user.User, error)
}
