package commands

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a sign-up request of a courier.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	person   kernel.Person
	password string

	guard guard.ConstructorGuard
}

func NewRegisterCourierCommand(person kernel.Person, password string) (RegisterCourierCommand, error) {
	command := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPerson(person),
		command.setPassword(password),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return command, nil
}

func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

func (c RegisterCourierCommand) Person() kernel.Person {
	return c.person
}

func (c RegisterCourierCommand) Password() string {
	return c.password
}

func (c *RegisterCourierCommand) setPerson(person kernel.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}

	c.person = person
	return nil
}

func (c *RegisterCourierCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
