// Package userrepo persists user accounts.
package userrepo

import (
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/user"
)

// UserDTO is the row of the users table. The phone number is unique.
type UserDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"type:varchar(64);not null"`
	Surname      string     `gorm:"type:varchar(64);not null"`
	PhoneNumber  string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(128);not null"`
	Address      AddressDTO `gorm:"embedded"`
}

func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO is embedded without a prefix: city, street, house_number.
type AddressDTO struct {
	City        string `gorm:"type:varchar(64);not null"`
	Street      string `gorm:"type:varchar(128);not null"`
	HouseNumber string `gorm:"type:varchar(16);not null"`
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Int64(),
		Name:         aggregate.Person().Name(),
		Surname:      aggregate.Person().Surname(),
		PhoneNumber:  aggregate.Phone().String(),
		PasswordHash: aggregate.PasswordHash(),
		Address: AddressDTO{
			City:        aggregate.Address().City(),
			Street:      aggregate.Address().Street(),
			HouseNumber: aggregate.Address().HouseNumber(),
		},
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	phone, err := kernel.NewPhoneNumber(dto.PhoneNumber)
	if err != nil {
		return nil, err
	}

	person, err := kernel.NewPerson(dto.Name, dto.Surname, phone)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.HouseNumber)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(kernel.ID(dto.ID), person, address, dto.PasswordHash)
}
