// Package orderrepo persists the order ledger.
package orderrepo

import (
	"time"

	"courierservice/internal/adapters/out/postgres/courierrepo"
	"courierservice/internal/adapters/out/postgres/restaurantrepo"
	"courierservice/internal/adapters/out/postgres/userrepo"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table. The association fields exist only
// so that migrations create the foreign keys; they are never loaded or saved.
type OrderDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	StartTime    time.Time  `gorm:"not null"`
	EndTime      *time.Time ``
	RestaurantID int64      `gorm:"not null;index"`
	UserID       int64      `gorm:"not null;index"`
	CourierID    *int64     `gorm:"index"`

	Restaurant *restaurantrepo.RestaurantDTO `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	User       *userrepo.UserDTO             `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Courier    *courierrepo.CourierDTO       `gorm:"foreignKey:CourierID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *int64
	if id := aggregate.Courier(); id != nil {
		raw := id.Int64()
		courierID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		Status:       aggregate.Status().String(),
		StartTime:    aggregate.StartTime(),
		EndTime:      aggregate.EndTime(),
		RestaurantID: aggregate.RestaurantID().Int64(),
		UserID:       aggregate.UserID().Int64(),
		CourierID:    courierID,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.ID
	if dto.CourierID != nil {
		id := kernel.ID(*dto.CourierID)
		courierID = &id
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.RestaurantID),
		kernel.ID(dto.UserID),
		courierID,
		status,
		dto.StartTime,
		dto.EndTime,
	)
}
