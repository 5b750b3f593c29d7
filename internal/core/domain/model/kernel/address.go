package kernel

import (
	"errors"
	"strings"

	"courierservice/internal/pkg/errs"
	"courierservice/internal/pkg/guard"
)

// DefaultCity is used when an address is created without a city.
const DefaultCity = "Тюмень"

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a postal address shared by users (delivery destination) and
// restaurants (pickup point). It is embedded by value into both aggregates.
//
// Example:
//
//	addr, err := kernel.NewAddress("", "Республики", "12")
//	if err != nil {
//	    // street or house number are missing
//	}
//	fmt.Println(addr.City()) // Тюмень
type Address struct {
	city        string
	street      string
	houseNumber string
	guard       guard.ConstructorGuard
}

// NewAddress validates its parts. Empty city falls back to DefaultCity;
// street and house number are required.
func NewAddress(city, street, houseNumber string) (Address, error) {
	addr := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		addr.setCity(city),
		addr.setStreet(street),
		addr.setHouseNumber(houseNumber),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) City() string {
	return a.city
}

func (a Address) Street() string {
	return a.street
}

func (a Address) HouseNumber() string {
	return a.houseNumber
}

// OnSameStreet compares the trimmed street part of two addresses exactly.
func (a Address) OnSameStreet(other Address) bool {
	return a.street == other.street
}

func (a Address) String() string {
	return a.city + ", " + a.street + ", " + a.houseNumber
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		city = DefaultCity
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setHouseNumber(houseNumber string) error {
	houseNumber = strings.TrimSpace(houseNumber)
	if houseNumber == "" {
		return errs.NewValueIsRequiredError("house number")
	}
	a.houseNumber = houseNumber
	return nil
}
