// Package user provides the User aggregate: an account that places orders
// delivered to its address.
package user

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"
	"courierservice/internal/pkg/guard"
)

var (
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	ErrUserIsNotConstructed   = errors.New("User must be created via NewUser constructor")
)

// User places orders. Personal data and the delivery address are value
// objects embedded by value.
type User struct {
	id           kernel.ID
	person       kernel.Person
	address      kernel.Address
	passwordHash string
	guard        guard.ConstructorGuard
}

// NewUser registers a new user. The id is assigned by the store.
func NewUser(person kernel.Person, address kernel.Address, passwordHash string) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setPerson(person),
		u.setAddress(address),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(id kernel.ID, person kernel.Person, address kernel.Address, passwordHash string) (*User, error) {
	u, err := NewUser(person, address, passwordHash)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Person() kernel.Person {
	return u.person
}

func (u *User) Phone() kernel.PhoneNumber {
	return u.person.Phone()
}

func (u *User) Address() kernel.Address {
	return u.address
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) setPerson(person kernel.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}
	u.person = person
	return nil
}

func (u *User) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	u.address = address
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}
