package commands_test

import (
	"errors"
	"testing"
	"time"

	"courierservice/internal/core/application/usecases/commands"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/order"
	"courierservice/internal/core/domain/services"
	"courierservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type placeOrderFixture struct {
	uow            *MockUoW
	factory        *MockPlaceOrderUoWFactory
	orderRepo      *MockOrderRepository
	userRepo       *MockUserRepository
	restaurantRepo *MockRestaurantRepository
}

func newPlaceOrderFixture() placeOrderFixture {
	f := placeOrderFixture{
		uow:            new(MockUoW),
		factory:        new(MockPlaceOrderUoWFactory),
		orderRepo:      new(MockOrderRepository),
		userRepo:       new(MockUserRepository),
		restaurantRepo: new(MockRestaurantRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("RestaurantRepository").Return(f.restaurantRepo).Maybe()
	f.uow.On("UserRepository").Return(f.userRepo).Maybe()
	f.uow.On("OrderRepository").Return(f.orderRepo).Maybe()
	return f
}

func newPlaceOrderHandler(f placeOrderFixture, now time.Time) commands.PlaceOrderCommandHandler {
	estimator := services.NewShippingEstimatorWithSource(func(int) int { return 123 })
	return commands.NewPlaceOrderCommandHandler(f.factory, fixedClock{now: now}, estimator)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	f := newPlaceOrderFixture()
	r := restoreRestaurant(t, 5, "Республики")
	u := restoreUser(t, 1, "Ленина")

	stored, err := order.RestoreOrder(kernel.ID(11), kernel.ID(5), kernel.ID(1), nil, order.Searching, now, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurantRepo.On("Get", ctx, kernel.ID(5)).Return(r, nil).Once(),
		f.userRepo.On("Get", ctx, kernel.ID(1)).Return(u, nil).Once(),
		f.orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsZero() &&
				o.RestaurantID() == kernel.ID(5) &&
				o.UserID() == kernel.ID(1) &&
				o.Status() == order.Searching &&
				o.StartTime().Equal(now) &&
				o.Courier() == nil
		})).Return(stored, nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewPlaceOrderCommand(kernel.ID(1), kernel.ID(5))
	require.NoError(t, err)

	placed, err := newPlaceOrderHandler(f, now).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(11), placed.Order.ID())
	assert.Equal(t, order.Searching, placed.Order.Status())
	assert.Equal(t, now, placed.Order.StartTime())
	assert.Equal(t, kernel.ID(5), placed.Order.RestaurantID())
	assert.Equal(t, services.MinShippingCost+123, placed.ShippingCost)
	f.uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_SameStreetShipping(t *testing.T) {
	ctx := t.Context()
	f := newPlaceOrderFixture()
	r := restoreRestaurant(t, 5, "Ленина")
	u := restoreUser(t, 1, "Ленина")
	saved := restoreOrder(t, 11, order.Searching, nil)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurantRepo.On("Get", ctx, kernel.ID(5)).Return(r, nil).Once(),
		f.userRepo.On("Get", ctx, kernel.ID(1)).Return(u, nil).Once(),
		f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(saved, nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewPlaceOrderCommand(kernel.ID(1), kernel.ID(5))
	require.NoError(t, err)

	placed, err := newPlaceOrderHandler(f, time.Now()).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, services.SameStreetShippingCost, placed.ShippingCost)
}

func TestPlaceOrderCommandHandler_Handle_RestaurantMissing(t *testing.T) {
	ctx := t.Context()
	f := newPlaceOrderFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurantRepo.On("Get", ctx, kernel.ID(5)).
			Return(nil, errs.NewObjectNotFoundError("restaurant", kernel.ID(5).String())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewPlaceOrderCommand(kernel.ID(1), kernel.ID(5))
	require.NoError(t, err)

	_, err = newPlaceOrderHandler(f, time.Now()).Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrRestaurantNotFound)
	f.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_ForeignKeyViolation(t *testing.T) {
	ctx := t.Context()
	f := newPlaceOrderFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurantRepo.On("Get", ctx, kernel.ID(5)).Return(restoreRestaurant(t, 5, "Пушкина"), nil).Once(),
		f.userRepo.On("Get", ctx, kernel.ID(1)).Return(restoreUser(t, 1, "Ленина"), nil).Once(),
		f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(nil, errs.NewObjectNotFoundErrorWithCause("restaurant", 5, errors.New("fk"))).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewPlaceOrderCommand(kernel.ID(1), kernel.ID(5))
	require.NoError(t, err)

	_, err = newPlaceOrderHandler(f, time.Now()).Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrRestaurantNotFound)
}

func TestPlaceOrderCommandHandler_Handle_StorageError(t *testing.T) {
	ctx := t.Context()
	f := newPlaceOrderFixture()
	storageErr := errors.New("connection reset")

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurantRepo.On("Get", ctx, kernel.ID(5)).Return(nil, storageErr).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewPlaceOrderCommand(kernel.ID(1), kernel.ID(5))
	require.NoError(t, err)

	_, err = newPlaceOrderHandler(f, time.Now()).Handle(ctx, cmd)
	require.ErrorIs(t, err, storageErr)
}
