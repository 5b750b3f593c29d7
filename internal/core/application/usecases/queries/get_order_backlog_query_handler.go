package queries

import (
	"context"

	"courierservice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

type statusCountRow struct {
	Status string
	Total  int64
}

func (h GetOrderBacklogQueryHandler) Handle(ctx context.Context, query GetOrderBacklogQuery) (OrderBacklog, error) {
	if err := query.Validate(); err != nil {
		return OrderBacklog{}, err
	}

	var rows []statusCountRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS total
		FROM orders
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return OrderBacklog{}, err
	}

	var backlog OrderBacklog
	for _, row := range rows {
		switch row.Status {
		case order.Searching.String():
			backlog.Searching = row.Total
		case order.InTransit.String():
			backlog.InTransit = row.Total
		case order.Delivered.String():
			backlog.Delivered = row.Total
		}
	}

	return backlog, nil
}
