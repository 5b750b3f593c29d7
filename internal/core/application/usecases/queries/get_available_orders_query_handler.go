package queries

import (
	"context"
	"time"

	"courierservice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// routeRow is shared by the courier facing listings.
type routeRow struct {
	ID                    int64
	Status                string
	StartTime             time.Time
	EndTime               *time.Time
	RestaurantID          int64
	RestaurantName        string
	RestaurantCity        string
	RestaurantStreet      string
	RestaurantHouseNumber string
	UserCity              string
	UserStreet            string
	UserHouseNumber       string
}

const routeSelect = `
	SELECT
		o.id,
		o.status,
		o.start_time,
		o.end_time,
		r.id AS restaurant_id,
		r.name AS restaurant_name,
		r.city AS restaurant_city,
		r.street AS restaurant_street,
		r.house_number AS restaurant_house_number,
		u.city AS user_city,
		u.street AS user_street,
		u.house_number AS user_house_number
	FROM orders o
	JOIN restaurants r ON r.id = o.restaurant_id
	JOIN users u ON u.id = o.user_id`

func (r routeRow) restaurantAddress() Address {
	return Address{City: r.RestaurantCity, Street: r.RestaurantStreet, HouseNumber: r.RestaurantHouseNumber}
}

func (r routeRow) userAddress() Address {
	return Address{City: r.UserCity, Street: r.UserStreet, HouseNumber: r.UserHouseNumber}
}

func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]AvailableOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []routeRow
	err := h.db.WithContext(ctx).
		Raw(routeSelect+` WHERE o.status = ? ORDER BY o.id`, order.Searching.String()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]AvailableOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, AvailableOrder{
			ID:                row.ID,
			StartTime:         row.StartTime,
			RestaurantID:      row.RestaurantID,
			RestaurantName:    row.RestaurantName,
			RestaurantAddress: row.restaurantAddress(),
			UserAddress:       row.userAddress(),
		})
	}

	return orders, nil
}
