// Package postgres provides the GORM-based Unit of Work and schema migrations
// shared by the repository packages.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// after Begin run inside that transaction; before Begin they use the plain
// connection.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.CourierRepository().Update(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork instance.
package postgres

import (
	"context"
	"database/sql"

	"courierservice/internal/adapters/out/postgres/courierrepo"
	"courierservice/internal/adapters/out/postgres/orderrepo"
	"courierservice/internal/adapters/out/postgres/restaurantrepo"
	"courierservice/internal/adapters/out/postgres/userrepo"
	"courierservice/internal/core/ports"

	"gorm.io/gorm"
)

// FactoryOption configures a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithTxOptions sets the options every transaction is started with, e.g. the
// isolation level. Nil keeps the driver defaults.
func WithTxOptions(opts *sql.TxOptions) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.txOptions = opts
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	txOptions *sql.TxOptions
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, WithTxOptions(&sql.TxOptions{Isolation: sql.LevelReadCommitted}))
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		txOptions: f.txOptions,
	}
}

// GormUnitOfWork coordinates one database transaction for a business operation.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	txOptions *sql.TxOptions
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	var tx *gorm.DB
	if uow.txOptions != nil {
		tx = uow.db.WithContext(ctx).Begin(uow.txOptions)
	} else {
		tx = uow.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes
// a deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
