package courierrepo

import (
	"context"
	"errors"

	"courierservice/internal/adapters/out/postgres/storeerr"
	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier and returns it with the assigned id.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) (*courier.Courier, error) {
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

// Update writes the work status if the stored one still matches the status
// the courier was loaded with.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND work_status = ?", aggregate.ID().Int64(), aggregate.PersistedWorkStatus().String()).
		Update("work_status", aggregate.WorkStatus().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier with work status "+aggregate.PersistedWorkStatus().String(),
			aggregate.ID().String())
	}

	return nil
}

// Get retrieves a courier by id.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPhone retrieves a courier by the phone number they registered with.
func (r *GormCourierRepository) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*courier.Courier, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone_number = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
