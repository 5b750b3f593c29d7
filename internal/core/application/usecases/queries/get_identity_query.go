package queries

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrGetIdentityQueryIsNotConstructed = errors.New(
	"GetIdentityQuery must be created via NewGetIdentityQuery constructor",
)

// GetIdentityQuery resolves the subject of an access token to an account id.
type GetIdentityQuery struct {
	kind  kernel.AccountKind
	phone kernel.PhoneNumber

	guard guard.ConstructorGuard
}

func NewGetIdentityQuery(kind kernel.AccountKind, phone kernel.PhoneNumber) (GetIdentityQuery, error) {
	if err := errors.Join(kind.Validate(), phone.Validate()); err != nil {
		return GetIdentityQuery{}, err
	}
	return GetIdentityQuery{
		kind:  kind,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetIdentityQuery) Validate() error {
	return q.guard.Validate(ErrGetIdentityQueryIsNotConstructed)
}

func (q GetIdentityQuery) Kind() kernel.AccountKind {
	return q.kind
}

func (q GetIdentityQuery) Phone() kernel.PhoneNumber {
	return q.phone
}

// Identity is the authenticated caller of a request.
type Identity struct {
	Kind kernel.AccountKind
	ID   kernel.ID
}

func (i Identity) IsCourier() bool {
	return i.Kind == kernel.CourierAccount
}

func (i Identity) IsUser() bool {
	return i.Kind == kernel.UserAccount
}
