package queries

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists the orders placed by a user, newest first.
type GetUserOrdersQuery struct {
	userID     kernel.ID
	activeOnly bool

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(userID kernel.ID, activeOnly bool) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	return GetUserOrdersQuery{
		userID:     userID,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() kernel.ID {
	return q.userID
}

func (q GetUserOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}
