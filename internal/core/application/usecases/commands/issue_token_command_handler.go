package commands

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/ports"
	"courierservice/internal/pkg/errs"
)

// IssueTokenCommandHandler checks account credentials and issues an access token.
// Unknown phone numbers and wrong passwords both yield ErrInvalidCredentials.
type IssueTokenCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewIssueTokenCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) IssueTokenCommandHandler {
	return IssueTokenCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle reads the account outside of a transaction; nothing is written.
func (h IssueTokenCommandHandler) Handle(ctx context.Context, command IssueTokenCommand) (ports.AccessToken, error) {
	if err := command.Validate(); err != nil {
		return ports.AccessToken{}, err
	}

	phone, err := kernel.NewPhoneNumber(command.Phone())
	if err != nil {
		return ports.AccessToken{}, ErrInvalidCredentials
	}

	hash, err := h.passwordHash(ctx, command.Kind(), phone)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.AccessToken{}, ErrInvalidCredentials
	}
	if err != nil {
		return ports.AccessToken{}, err
	}

	if err = h.hasher.Compare(hash, command.Password()); err != nil {
		return ports.AccessToken{}, ErrInvalidCredentials
	}

	return h.issuer.Issue(command.Kind(), phone)
}

func (h IssueTokenCommandHandler) passwordHash(
	ctx context.Context,
	kind kernel.AccountKind,
	phone kernel.PhoneNumber,
) (string, error) {
	uow := h.uowFactory.Create()

	if kind == kernel.CourierAccount {
		c, err := uow.CourierRepository().GetByPhone(ctx, phone)
		if err != nil {
			return "", err
		}
		return c.PasswordHash(), nil
	}

	u, err := uow.UserRepository().GetByPhone(ctx, phone)
	if err != nil {
		return "", err
	}
	return u.PasswordHash(), nil
}
