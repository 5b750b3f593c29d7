package queries

import (
	"context"

	"courierservice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle returns ErrRestaurantNotFound for an unknown restaurant and an empty
// slice for a restaurant without orders.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	exists, err := rowExists(ctx, h.db, "restaurants", query.RestaurantID().Int64())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
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
		WHERE o.restaurant_id = ?`
	args := []any{query.RestaurantID().Int64()}
	if query.ActiveOnly() {
		sql += ` AND o.status IN ?`
		args = append(args, activeStatusNames())
	}
	sql += ` ORDER BY o.id DESC`

	orders := make([]OrderSummary, 0)
	if err = h.db.WithContext(ctx).Raw(sql, args...).Scan(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func activeStatusNames() []string {
	names := make([]string, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		names = append(names, s.String())
	}
	return names
}
