package commands

import (
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/guard"
)

var ErrIssueTokenCommandIsNotConstructed = errors.New(
	"IssueTokenCommand must be created via NewIssueTokenCommand constructor",
)

// IssueTokenCommand is a login attempt. The phone number is kept raw: a
// malformed number is reported the same way as a wrong password.
type IssueTokenCommand struct { //nolint:recvcheck //using for validation
	kind     kernel.AccountKind
	phone    string
	password string

	guard guard.ConstructorGuard
}

func NewIssueTokenCommand(kind kernel.AccountKind, phone, password string) (IssueTokenCommand, error) {
	if err := kind.Validate(); err != nil {
		return IssueTokenCommand{}, err
	}

	return IssueTokenCommand{
		kind:     kind,
		phone:    phone,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c IssueTokenCommand) Validate() error {
	return c.guard.Validate(ErrIssueTokenCommandIsNotConstructed)
}

func (c IssueTokenCommand) Kind() kernel.AccountKind {
	return c.kind
}

func (c IssueTokenCommand) Phone() string {
	return c.phone
}

func (c IssueTokenCommand) Password() string {
	return c.password
}
