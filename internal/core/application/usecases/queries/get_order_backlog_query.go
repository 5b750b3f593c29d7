package queries

import (
	"errors"

	"courierservice/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts orders per status.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

type OrderBacklog struct {
	Searching int64
	InTransit int64
	Delivered int64
}
