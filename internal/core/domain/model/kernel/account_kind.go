package kernel

import (
	"fmt"
	"strings"

	"courierservice/internal/pkg/errs"
)

// AccountKind tags an authenticated identity. Users and couriers live in
// separate tables and may even share a phone number, so every access token
// carries the kind it was issued for.
type AccountKind int

const (
	UnknownAccount AccountKind = iota
	UserAccount
	CourierAccount
)

func getAccountKindStrings() map[AccountKind]string {
	return map[AccountKind]string{
		UnknownAccount: "UNKNOWN",
		UserAccount:    "USER",
		CourierAccount: "COURIER",
	}
}

// ParseAccountKind is the inverse of String for valid kinds.
func ParseAccountKind(raw string) (AccountKind, error) {
	for kind, str := range getAccountKindStrings() {
		if kind != UnknownAccount && strings.EqualFold(str, raw) {
			return kind, nil
		}
	}
	return UnknownAccount, errs.NewValueIsInvalidErrorWithCause(
		"account kind", fmt.Errorf("%q is not a valid account kind", raw))
}

func (k AccountKind) Validate() error {
	if k != UserAccount && k != CourierAccount {
		return errs.NewValueIsInvalidErrorWithCause(
			"account kind", fmt.Errorf("%d is not a valid account kind", k))
	}
	return nil
}

func (k AccountKind) String() string {
	if str, ok := getAccountKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}
