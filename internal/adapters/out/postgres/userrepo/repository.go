package userrepo

import (
	"context"
	"errors"

	"courierservice/internal/adapters/out/postgres/storeerr"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/user"
	"courierservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a new user and returns it with the assigned id.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if storeerr.IsUniqueViolation(err) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("phone number", dto.PhoneNumber, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPhone retrieves a user by the phone number they registered with.
func (r *GormUserRepository) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*user.User, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone_number = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
