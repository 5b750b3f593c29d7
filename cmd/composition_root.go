package cmd

import (
	"context"
	"database/sql"
	"log/slog"

	httpin "courierservice/internal/adapters/in/http"
	"courierservice/internal/adapters/out/clock"
	"courierservice/internal/adapters/out/credentials"
	"courierservice/internal/adapters/out/postgres"
	"courierservice/internal/core/application/usecases/commands"
	"courierservice/internal/core/application/usecases/queries"
	"courierservice/internal/core/domain/services"
	"courierservice/internal/core/ports"
	"courierservice/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	hasher     ports.PasswordHasher
	tokens     *credentials.JWTTokens
	estimator  services.ShippingEstimator
}

// Option overrides a collaborator of the composition root.
type Option func(*CompositionRoot)

// WithPasswordHasher replaces the bcrypt hasher, e.g. with a cheaper cost.
func WithPasswordHasher(hasher ports.PasswordHasher) Option {
	return func(c *CompositionRoot) {
		c.hasher = hasher
	}
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger, opts ...Option) (*CompositionRoot, error) {
	var factoryOpts []postgres.FactoryOption
	if config.DBDriver == DriverPostgres {
		factoryOpts = append(factoryOpts, postgres.WithTxOptions(&sql.TxOptions{Isolation: sql.LevelReadCommitted}))
	}

	localClock := clock.NewLocalClock(config.Location)
	tokens, err := credentials.NewJWTTokens(config.SecretKey, config.AccessTokenTTL, localClock)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, factoryOpts...),
		clock:      localClock,
		hasher:     credentials.NewBcryptHasher(),
		tokens:     tokens,
		estimator:  services.NewShippingEstimator(),
	}
	for _, opt := range opts {
		opt(root)
	}
	return root, nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateIssueTokenCommandHandler() commands.IssueTokenCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueTokenCommandHandler(f, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.clock, c.estimator)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetIdentityQueryHandler() queries.GetIdentityQueryHandler {
	return queries.NewGetIdentityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		GetRestaurantOrders: queries.NewGetRestaurantOrdersQueryHandler(c.gormDB),
		GetRestaurantOrder:  queries.NewGetRestaurantOrderQueryHandler(c.gormDB),
		GetAvailableOrders:  queries.NewGetAvailableOrdersQueryHandler(c.gormDB),
		GetCourierOrders:    queries.NewGetCourierOrdersQueryHandler(c.gormDB),
		GetUserOrders:       queries.NewGetUserOrdersQueryHandler(c.gormDB),
		GetUserOrder:        queries.NewGetUserOrderQueryHandler(c.gormDB),
		GetShippingCost:     queries.NewGetShippingCostQueryHandler(c.gormDB, c.estimator),
	}
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	return httpin.CommandHandlers{
		RegisterUser:     c.CreateRegisterUserCommandHandler(),
		RegisterCourier:  c.CreateRegisterCourierCommandHandler(),
		IssueToken:       c.CreateIssueTokenCommandHandler(),
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		PlaceOrder:       c.CreatePlaceOrderCommandHandler(),
		ClaimOrder:       c.CreateClaimOrderCommandHandler(),
		CompleteOrder:    c.CreateCompleteOrderCommandHandler(),
	}
}

// CreateHTTPServer builds the echo instance with every route registered.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.config.Location, c.logger)
	auth := httpin.NewAuthenticator(c.tokens, c.CreateGetIdentityQueryHandler(), c.logger)
	_, echoLevel := c.config.LogLevels()

	return httpin.NewRouter(server, auth, httpin.RouterConfig{
		Doc:      doc,
		LogLevel: echoLevel,
		Logger:   c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBacklogQueryHandler(), c.config.BacklogReportSchedule, c.logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
