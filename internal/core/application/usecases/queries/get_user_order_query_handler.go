package queries

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type GetUserOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrderQueryHandler(db *gorm.DB) GetUserOrderQueryHandler {
	return GetUserOrderQueryHandler{db: db}
}

type userOrderRow struct {
	ID               int64
	Status           string
	RestaurantName   string
	StartTime        time.Time
	EndTime          *time.Time
	CourierName      *string
	CourierSurname   *string
	DeliveryDuration int
}

// Handle returns ErrOrderNotFound when the order is missing or was placed by
// somebody else.
func (h GetUserOrderQueryHandler) Handle(ctx context.Context, query GetUserOrderQuery) (UserOrderDetail, error) {
	if err := query.Validate(); err != nil {
		return UserOrderDetail{}, err
	}

	var rows []userOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			r.name AS restaurant_name,
			o.start_time,
			o.end_time,
			c.name AS courier_name,
			c.surname AS courier_surname,
			r.delivery_duration
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.id = ? AND o.user_id = ?
	`, query.OrderID().Int64(), query.UserID().Int64()).Scan(&rows).Error
	if err != nil {
		return UserOrderDetail{}, err
	}
	if len(rows) == 0 {
		return UserOrderDetail{}, ErrOrderNotFound
	}

	row := rows[0]
	detail := UserOrderDetail{
		ID:                      row.ID,
		Status:                  row.Status,
		RestaurantName:          row.RestaurantName,
		StartTime:               row.StartTime,
		EndTime:                 row.EndTime,
		DeliveryDurationMinutes: row.DeliveryDuration,
	}
	if row.CourierName != nil {
		name := strings.TrimSpace(*row.CourierName + " " + deref(row.CourierSurname))
		detail.CourierName = &name
	}

	return detail, nil
}
