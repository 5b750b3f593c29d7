package commands

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/model/user"
	"courierservice/internal/core/ports"
	"courierservice/internal/pkg/errs"
)

// RegisterUserCommandHandler stores a new user with a hashed password.
// A phone number that is already taken yields ErrUserAlreadyRegistered.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the stored user with its assigned id.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(command.Person(), command.Address(), hash)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saved, err := uow.UserRepository().Add(ctx, aggregate)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return nil, ErrUserAlreadyRegistered
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
