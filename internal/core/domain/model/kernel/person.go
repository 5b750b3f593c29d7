package kernel

import (
	"errors"
	"strings"

	"courierservice/internal/pkg/errs"
	"courierservice/internal/pkg/guard"
)

var ErrPersonIsNotConstructed = errs.NewValueIsRequiredError(
	"person must be created via NewPerson constructor")

// Person holds the personal data common to users and couriers.
type Person struct {
	name    string
	surname string
	phone   PhoneNumber
	guard   guard.ConstructorGuard
}

func NewPerson(name, surname string, phone PhoneNumber) (Person, error) {
	p := Person{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setSurname(surname),
		p.setPhone(phone),
	); err != nil {
		return Person{}, err
	}

	return p, nil
}

func (p Person) Validate() error {
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

func (p Person) Name() string {
	return p.name
}

func (p Person) Surname() string {
	return p.surname
}

func (p Person) Phone() PhoneNumber {
	return p.phone
}

// FullName joins name and surname, e.g. for order details shown to users.
func (p Person) FullName() string {
	return p.name + " " + p.surname
}

func (p *Person) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Person) setSurname(surname string) error {
	surname = strings.TrimSpace(surname)
	if surname == "" {
		return errs.NewValueIsRequiredError("surname")
	}
	p.surname = surname
	return nil
}

func (p *Person) setPhone(phone PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	p.phone = phone
	return nil
}
