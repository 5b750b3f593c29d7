package commands

import (
	"context"
	"errors"

	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/ports"
	"courierservice/internal/pkg/errs"
)

// RegisterCourierCommandHandler stores a new courier, initially available.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterCourierCommandHandler(
	uowFactory CourierUoWFactory,
	hasher ports.PasswordHasher,
) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the stored courier with its assigned id, or
// ErrCourierAlreadyRegistered when the phone number is taken.
func (h RegisterCourierCommandHandler) Handle(
	ctx context.Context,
	command RegisterCourierCommand,
) (*courier.Courier, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := courier.NewCourier(command.Person(), hash)
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

	saved, err := uow.CourierRepository().Add(ctx, aggregate)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return nil, ErrCourierAlreadyRegistered
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
