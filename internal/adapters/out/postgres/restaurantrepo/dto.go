// Package restaurantrepo persists the restaurant registry.
package restaurantrepo

import (
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/restaurant"
)

// RestaurantDTO is the row of the restaurants table. Opening hours are stored
// as "HH:MM:SS" text so the same schema works on every supported store.
type RestaurantDTO struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	Name             string     `gorm:"type:varchar(128);not null;uniqueIndex"`
	Address          AddressDTO `gorm:"embedded"`
	OpeningTime      string     `gorm:"type:varchar(8);not null"`
	ClosingTime      string     `gorm:"type:varchar(8);not null"`
	DeliveryDuration int        `gorm:"not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type AddressDTO struct {
	City        string `gorm:"type:varchar(64);not null"`
	Street      string `gorm:"type:varchar(128);not null"`
	HouseNumber string `gorm:"type:varchar(16);not null"`
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:   aggregate.ID().Int64(),
		Name: aggregate.Name(),
		Address: AddressDTO{
			City:        aggregate.Address().City(),
			Street:      aggregate.Address().Street(),
			HouseNumber: aggregate.Address().HouseNumber(),
		},
		OpeningTime:      aggregate.OpeningTime().String(),
		ClosingTime:      aggregate.ClosingTime().String(),
		DeliveryDuration: aggregate.DeliveryDurationMinutes(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.HouseNumber)
	if err != nil {
		return nil, err
	}

	opening, err := kernel.ParseTimeOfDay(dto.OpeningTime)
	if err != nil {
		return nil, err
	}

	closing, err := kernel.ParseTimeOfDay(dto.ClosingTime)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(kernel.ID(dto.ID), dto.Name, address, opening, closing, dto.DeliveryDuration)
}
