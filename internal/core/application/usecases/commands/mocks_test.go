package commands_test

import (
	"context"
	"testing"
	"time"

	"courierservice/internal/core/application/usecases/commands"
	"courierservice/internal/core/domain/model/courier"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/order"
	"courierservice/internal/core/domain/model/restaurant"
	"courierservice/internal/core/domain/model/user"
	"courierservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasInTransitForCourier(ctx context.Context, courierID kernel.ID) (bool, error) {
	args := m.Called(ctx, courierID)
	return args.Bool(0), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) (*courier.Courier, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*courier.Courier, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*user.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

// MockUoW satisfies every unit of work variant of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(kind kernel.AccountKind, phone kernel.PhoneNumber) (ports.AccessToken, error) {
	args := m.Called(kind, phone)
	return args.Get(0).(ports.AccessToken), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func mustPerson(t *testing.T, phone string) kernel.Person {
	t.Helper()
	number, err := kernel.NewPhoneNumber(phone)
	require.NoError(t, err)
	person, err := kernel.NewPerson("Иван", "Петров", number)
	require.NoError(t, err)
	return person
}

func mustAddress(t *testing.T, street string) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(kernel.DefaultCity, street, "1")
	require.NoError(t, err)
	return address
}

func restoreCourier(t *testing.T, id int64, status courier.WorkStatus) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.ID(id), mustPerson(t, "+79990000002"), "hash", status)
	require.NoError(t, err)
	return c
}

func restoreUser(t *testing.T, id int64, street string) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.ID(id), mustPerson(t, "+79990000001"), mustAddress(t, street), "hash")
	require.NoError(t, err)
	return u
}

func restoreRestaurant(t *testing.T, id int64, street string) *restaurant.Restaurant {
	t.Helper()
	opening, err := kernel.NewTimeOfDay(9, 0, 0)
	require.NoError(t, err)
	closing, err := kernel.NewTimeOfDay(21, 0, 0)
	require.NoError(t, err)
	r, err := restaurant.RestoreRestaurant(kernel.ID(id), "Пиццерия", mustAddress(t, street), opening, closing, 30)
	require.NoError(t, err)
	return r
}

func restoreOrder(t *testing.T, id int64, status order.Status, courierID *kernel.ID) *order.Order {
	t.Helper()
	start := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	var end *time.Time
	if status == order.Delivered {
		e := start.Add(30 * time.Minute)
		end = &e
	}
	o, err := order.RestoreOrder(kernel.ID(id), kernel.ID(1), kernel.ID(1), courierID, status, start, end)
	require.NoError(t, err)
	return o
}

func idPtr(id int64) *kernel.ID {
	v := kernel.ID(id)
	return &v
}
