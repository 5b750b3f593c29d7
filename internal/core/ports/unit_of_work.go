package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, so concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single command.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback after Commit only reports that no transaction is active.
	Rollback(ctx context.Context) error

	// Repositories are bound to the transaction started by Begin,
	// or to the plain connection when no transaction is active.
	CourierRepository() CourierRepository
	OrderRepository() OrderRepository
	RestaurantRepository() RestaurantRepository
	UserRepository() UserRepository
}
