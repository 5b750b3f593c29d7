// Package pgtest starts throwaway PostgreSQL containers for integration suites.
package pgtest

import (
	"context"
	"time"

	"courierservice/internal/adapters/out/postgres"
	"courierservice/internal/adapters/out/postgres/courierrepo"
	"courierservice/internal/adapters/out/postgres/restaurantrepo"
	"courierservice/internal/adapters/out/postgres/userrepo"
	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/restaurant"
	"courierservice/internal/core/domain/model/user"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated database living in its own container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects with TranslateError enabled and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table and restarts the id sequences.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).
		Exec("TRUNCATE TABLE orders, couriers, users, restaurants RESTART IDENTITY CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	return d.Container.Terminate(ctx)
}

// SeedUser stores a user living on street and returns it with its id.
func (d *Database) SeedUser(ctx context.Context, phone, street string) (*user.User, error) {
	person, err := newPerson("Иван", "Петров", phone)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(kernel.DefaultCity, street, "1")
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(person, address, "$2a$10$hash")
	if err != nil {
		return nil, err
	}
	return userrepo.NewGormUserRepository(d.DB).Add(ctx, u)
}

// SeedCourier stores an available courier and returns it with its id.
func (d *Database) SeedCourier(ctx context.Context, phone string) (*courier.Courier, error) {
	person, err := newPerson("Олег", "Сидоров", phone)
	if err != nil {
		return nil, err
	}
	c, err := courier.NewCourier(person, "$2a$10$hash")
	if err != nil {
		return nil, err
	}
	return courierrepo.NewGormCourierRepository(d.DB).Add(ctx, c)
}

// SeedRestaurant stores a restaurant open 09:00-22:00 on street.
func (d *Database) SeedRestaurant(ctx context.Context, name, street string) (*restaurant.Restaurant, error) {
	address, err := kernel.NewAddress(kernel.DefaultCity, street, "10")
	if err != nil {
		return nil, err
	}
	opening, err := kernel.NewTimeOfDay(9, 0, 0)
	if err != nil {
		return nil, err
	}
	closing, err := kernel.NewTimeOfDay(22, 0, 0)
	if err != nil {
		return nil, err
	}
	r, err := restaurant.NewRestaurant(name, address, opening, closing, 40)
	if err != nil {
		return nil, err
	}
	return restaurantrepo.NewGormRestaurantRepository(d.DB).Add(ctx, r)
}

func newPerson(name, surname, phone string) (kernel.Person, error) {
	number, err := kernel.NewPhoneNumber(phone)
	if err != nil {
		return kernel.Person{}, err
	}
	return kernel.NewPerson(name, surname, number)
}
