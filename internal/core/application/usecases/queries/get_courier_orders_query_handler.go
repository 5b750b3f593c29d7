package queries

import (
	"context"

	"courierservice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

func (h GetCourierOrdersQueryHandler) Handle(ctx context.Context, query GetCourierOrdersQuery) ([]CourierOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := routeSelect + ` WHERE o.courier_id = ?`
	args := []any{query.CourierID().Int64()}
	if !query.AllOrders() {
		sql += ` AND o.status = ?`
		args = append(args, order.InTransit.String())
	}
	sql += ` ORDER BY o.id DESC`

	var rows []routeRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]CourierOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, CourierOrder{
			ID:                row.ID,
			Status:            row.Status,
			StartTime:         row.StartTime,
			EndTime:           row.EndTime,
			RestaurantID:      row.RestaurantID,
			RestaurantName:    row.RestaurantName,
			RestaurantAddress: row.restaurantAddress(),
			UserAddress:       row.userAddress(),
		})
	}

	return orders, nil
}
