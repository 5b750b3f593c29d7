package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Address is the read model of kernel.Address.
type Address struct {
	City        string
	Street      string
	HouseNumber string
}

// UserSnapshot is the customer as shown to a restaurant.
type UserSnapshot struct {
	ID          int64
	Name        string
	Surname     string
	PhoneNumber string
	Address     Address
}

// CourierSnapshot is the courier delivering an order.
type CourierSnapshot struct {
	ID          int64
	Name        string
	Surname     string
	PhoneNumber string
}

// OrderSummary is one row of an order listing. Fields map to the selected
// columns by gorm naming (restaurant_name, courier_id...).
type OrderSummary struct {
	ID             int64
	Status         string
	StartTime      time.Time
	EndTime        *time.Time
	RestaurantID   int64
	RestaurantName string
	UserID         int64
	CourierID      *int64
}

// rowExists reports whether table has a row with the given id.
func rowExists(ctx context.Context, db *gorm.DB, table string, id int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
