package queries

import (
	"context"

	"courierservice/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetIdentityQueryHandler struct {
	db *gorm.DB
}

func NewGetIdentityQueryHandler(db *gorm.DB) GetIdentityQueryHandler {
	return GetIdentityQueryHandler{db: db}
}

// Handle returns ErrIdentityNotFound when the account behind a still valid
// token no longer exists.
func (h GetIdentityQueryHandler) Handle(ctx context.Context, query GetIdentityQuery) (Identity, error) {
	if err := query.Validate(); err != nil {
		return Identity{}, err
	}

	table := "users"
	if query.Kind() == kernel.CourierAccount {
		table = "couriers"
	}

	var ids []int64
	err := h.db.WithContext(ctx).
		Table(table).
		Where("phone_number = ?", query.Phone().String()).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return Identity{}, err
	}
	if len(ids) == 0 {
		return Identity{}, ErrIdentityNotFound
	}

	accountID, err := kernel.NewID(ids[0])
	if err != nil {
		return Identity{}, err
	}

	return Identity{Kind: query.Kind(), ID: accountID}, nil
}
