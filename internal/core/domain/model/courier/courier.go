package courier

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"
	"courierservice/internal/pkg/guard"
)

var (
	// ErrPasswordHashIsRequired is returned when a courier is built without credentials.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsBusy is returned when a busy courier tries to take another order.
	ErrCourierIsBusy = errors.New("courier is busy")
	// ErrCourierIsNotBusy is returned when releasing a courier that holds no order.
	ErrCourierIsNotBusy = errors.New("courier is not busy")
)

// Courier is an account that claims and delivers orders.
//
// Invariants:
//   - Personal data (name, surname, phone) is always valid
//   - A password hash is always present; plaintext never reaches the aggregate
//   - WorkStatus is Busy exactly while the courier holds an InTransit order
//
// Like order.Order it keeps the work status it was loaded with, so the
// repository can update it conditionally.
type Courier struct {
	id                  kernel.ID
	person              kernel.Person
	passwordHash        string
	workStatus          WorkStatus
	persistedWorkStatus WorkStatus
	guard               guard.ConstructorGuard
}

// NewCourier registers a new, available courier. The id is assigned by the store.
//
// Example:
//
//	phone, _ := kernel.NewPhoneNumber("+79999999999")
//	person, _ := kernel.NewPerson("Ivan", "Petrov", phone)
//	c, err := courier.NewCourier(person, hash)
func NewCourier(person kernel.Person, passwordHash string) (*Courier, error) {
	c := &Courier{
		workStatus: Available,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setPerson(person), c.setPasswordHash(passwordHash)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier rebuilds a persisted courier.
func RestoreCourier(id kernel.ID, person kernel.Person, passwordHash string, status WorkStatus) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		c.setPerson(person),
		c.setPasswordHash(passwordHash),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.id = id
	c.workStatus = status
	c.persistedWorkStatus = status
	return c, nil
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && !c.id.IsZero() && c.id == other.id
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.ID {
	return c.id
}

func (c *Courier) Person() kernel.Person {
	return c.person
}

func (c *Courier) Phone() kernel.PhoneNumber {
	return c.person.Phone()
}

func (c *Courier) PasswordHash() string {
	return c.passwordHash
}

func (c *Courier) WorkStatus() WorkStatus {
	return c.workStatus
}

// PersistedWorkStatus returns the work status the courier had when it was loaded.
func (c *Courier) PersistedWorkStatus() WorkStatus {
	return c.persistedWorkStatus
}

func (c *Courier) IsAvailable() bool {
	return c.workStatus == Available
}

// Occupy marks the courier busy when they take an order.
func (c *Courier) Occupy() error {
	if c.workStatus != Available {
		return ErrCourierIsBusy
	}
	c.workStatus = Busy
	return nil
}

// Release makes the courier available again after a delivery.
func (c *Courier) Release() error {
	if c.workStatus != Busy {
		return ErrCourierIsNotBusy
	}
	c.workStatus = Available
	return nil
}

func (c *Courier) setPerson(person kernel.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}
	c.person = person
	return nil
}

func (c *Courier) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	c.passwordHash = hash
	return nil
}
