package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.status,
			o.start_time,
			o.end_time,
			o.restaurant_id,
			r.name AS restaurant_name,
			o.user_id,
			o.courier_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.user_id = ?`
	args := []any{query.UserID().Int64()}
	if query.ActiveOnly() {
		sql += ` AND o.status IN ?`
		args = append(args, activeStatusNames())
	}
	sql += ` ORDER BY o.id DESC`

	orders := make([]OrderSummary, 0)
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}
