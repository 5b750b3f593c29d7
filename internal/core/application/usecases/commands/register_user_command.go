package commands

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a sign-up request of a user who will place orders.
//
// Example:
//
//	phone, _ := kernel.NewPhoneNumber("+79999999999")
//	person, _ := kernel.NewPerson("Иван", "Петров", phone)
//	address, _ := kernel.NewAddress("", "Ленина", "5")
//	cmd, err := NewRegisterUserCommand(person, address, "s3cret")
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	person   kernel.Person
	address  kernel.Address
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(person kernel.Person, address kernel.Address, password string) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPerson(person),
		command.setAddress(address),
		command.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Person() kernel.Person {
	return c.person
}

func (c RegisterUserCommand) Address() kernel.Address {
	return c.address
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setPerson(person kernel.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}

	c.person = person
	return nil
}

func (c *RegisterUserCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
