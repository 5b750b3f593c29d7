// Package courierrepo persists courier accounts and their work status.
package courierrepo

import (
	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/domain/model/kernel"
)

// CourierDTO is the row of the couriers table.
type CourierDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(64);not null"`
	Surname      string `gorm:"type:varchar(64);not null"`
	PhoneNumber  string `gorm:"type:varchar(32);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(128);not null"`
	WorkStatus   string `gorm:"type:varchar(16);not null;index"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           aggregate.ID().Int64(),
		Name:         aggregate.Person().Name(),
		Surname:      aggregate.Person().Surname(),
		PhoneNumber:  aggregate.Phone().String(),
		PasswordHash: aggregate.PasswordHash(),
		WorkStatus:   aggregate.WorkStatus().String(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	phone, err := kernel.NewPhoneNumber(dto.PhoneNumber)
	if err != nil {
		return nil, err
	}

	person, err := kernel.NewPerson(dto.Name, dto.Surname, phone)
	if err != nil {
		return nil, err
	}

	status, err := courier.ParseWorkStatus(dto.WorkStatus)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(kernel.ID(dto.ID), person, dto.PasswordHash, status)
}
