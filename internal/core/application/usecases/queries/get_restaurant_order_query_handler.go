package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type GetRestaurantOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantOrderQueryHandler(db *gorm.DB) GetRestaurantOrderQueryHandler {
	return GetRestaurantOrderQueryHandler{db: db}
}

type restaurantOrderRow struct {
	ID                 int64
	Status             string
	StartTime          time.Time
	EndTime            *time.Time
	RestaurantID       int64
	UserID             int64
	UserName           string
	UserSurname        string
	UserPhoneNumber    string
	UserCity           string
	UserStreet         string
	UserHouseNumber    string
	CourierID          *int64
	CourierName        *string
	CourierSurname     *string
	CourierPhoneNumber *string
}

// Handle returns ErrRestaurantOrderNotFound when the order does not exist or
// belongs to another restaurant.
func (h GetRestaurantOrderQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrderQuery,
) (RestaurantOrderDetail, error) {
	if err := query.Validate(); err != nil {
		return RestaurantOrderDetail{}, err
	}

	var rows []restaurantOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.start_time,
			o.end_time,
			o.restaurant_id,
			u.id AS user_id,
			u.name AS user_name,
			u.surname AS user_surname,
			u.phone_number AS user_phone_number,
			u.city AS user_city,
			u.street AS user_street,
			u.house_number AS user_house_number,
			c.id AS courier_id,
			c.name AS courier_name,
			c.surname AS courier_surname,
			c.phone_number AS courier_phone_number
		FROM orders o
		JOIN users u ON u.id = o.user_id
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.id = ? AND o.restaurant_id = ?
	`, query.OrderID().Int64(), query.RestaurantID().Int64()).Scan(&rows).Error
	if err != nil {
		return RestaurantOrderDetail{}, err
	}
	if len(rows) == 0 {
		return RestaurantOrderDetail{}, ErrRestaurantOrderNotFound
	}

	row := rows[0]
	detail := RestaurantOrderDetail{
		ID:           row.ID,
		Status:       row.Status,
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		RestaurantID: row.RestaurantID,
		User: UserSnapshot{
			ID:          row.UserID,
			Name:        row.UserName,
			Surname:     row.UserSurname,
			PhoneNumber: row.UserPhoneNumber,
			Address: Address{
				City:        row.UserCity,
				Street:      row.UserStreet,
				HouseNumber: row.UserHouseNumber,
			},
		},
	}
	if row.CourierID != nil {
		detail.Courier = &CourierSnapshot{
			ID:          *row.CourierID,
			Name:        deref(row.CourierName),
			Surname:     deref(row.CourierSurname),
			PhoneNumber: deref(row.CourierPhoneNumber),
		}
	}

	return detail, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
