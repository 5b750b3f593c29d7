package http

import (
	"log/slog"
	"net/http"
	"time"

	"courierservice/internal/core/application/usecases/commands"
	"courierservice/internal/core/application/usecases/queries"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CommandHandlers are the write side use cases served over HTTP.
type CommandHandlers struct {
	RegisterUser     commands.RegisterUserCommandHandler
	RegisterCourier  commands.RegisterCourierCommandHandler
	IssueToken       commands.IssueTokenCommandHandler
	CreateRestaurant commands.CreateRestaurantCommandHandler
	PlaceOrder       commands.PlaceOrderCommandHandler
	ClaimOrder       commands.ClaimOrderCommandHandler
	CompleteOrder    commands.CompleteOrderCommandHandler
}

// QueryHandlers are the read side use cases served over HTTP.
type QueryHandlers struct {
	GetRestaurantOrders queries.GetRestaurantOrdersQueryHandler
	GetRestaurantOrder  queries.GetRestaurantOrderQueryHandler
	GetAvailableOrders  queries.GetAvailableOrdersQueryHandler
	GetCourierOrders    queries.GetCourierOrdersQueryHandler
	GetUserOrders       queries.GetUserOrdersQueryHandler
	GetUserOrder        queries.GetUserOrderQueryHandler
	GetShippingCost     queries.GetShippingCostQueryHandler
}

// Server handles the /api/v1 routes.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	times    timeFormatter
	logger   *slog.Logger
}

// NewServer creates a server rendering timestamps in location.
func NewServer(cmds CommandHandlers, qrs QueryHandlers, location *time.Location, logger *slog.Logger) *Server {
	if location == nil {
		location = time.UTC
	}
	return &Server{
		commands: cmds,
		queries:  qrs,
		times:    timeFormatter{location: location},
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request RegisterUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	person, err := newPerson(request.RegisterCourierRequest)
	if err != nil {
		return s.handleError(ctx, err)
	}
	address, err := kernel.NewAddress(request.City, request.Street, request.HouseNumber)
	if err != nil {
		return s.handleError(ctx, err)
	}
	cmd, err := commands.NewRegisterUserCommand(person, address, request.Password)
	if err != nil {
		return s.handleError(ctx, err)
	}

	registered, err := s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, accountResponse(registered.ID(), registered.Person()))
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request RegisterCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	person, err := newPerson(request)
	if err != nil {
		return s.handleError(ctx, err)
	}
	cmd, err := commands.NewRegisterCourierCommand(person, request.Password)
	if err != nil {
		return s.handleError(ctx, err)
	}

	registered, err := s.commands.RegisterCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, accountResponse(registered.ID(), registered.Person()))
}

// IssueUserToken handles POST /api/v1/users/token.
func (s *Server) IssueUserToken(ctx echo.Context) error {
	return s.issueToken(ctx, kernel.UserAccount)
}

// IssueCourierToken handles POST /api/v1/couriers/token.
func (s *Server) IssueCourierToken(ctx echo.Context) error {
	return s.issueToken(ctx, kernel.CourierAccount)
}

func (s *Server) issueToken(ctx echo.Context, kind kernel.AccountKind) error {
	var request TokenRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewIssueTokenCommand(kind, request.PhoneNumber, request.Password)
	if err != nil {
		return writeUnauthorized(ctx, commands.ErrInvalidCredentials.Error())
	}

	token, err := s.commands.IssueToken.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{AccessToken: token.Value, TokenType: "Bearer"})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var request CreateRestaurantRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	address, err := kernel.NewAddress(request.City, request.Street, request.HouseNumber)
	if err != nil {
		return s.handleError(ctx, err)
	}
	opening, err := kernel.ParseTimeOfDay(request.OpeningTime)
	if err != nil {
		return s.handleError(ctx, err)
	}
	closing, err := kernel.ParseTimeOfDay(request.ClosingTime)
	if err != nil {
		return s.handleError(ctx, err)
	}
	cmd, err := commands.NewCreateRestaurantCommand(request.Name, address, opening, closing, request.DeliveryDuration)
	if err != nil {
		return s.handleError(ctx, err)
	}

	created, err := s.commands.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RestaurantResponse{ID: created.ID().Int64(), Name: created.Name()})
}

// GetRestaurantOrders handles GET /api/v1/restaurants/{restaurant_id}/orders.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurant_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	active, err := queryFlag(ctx, "active")
	if err != nil {
		return s.handleError(ctx, err)
	}
	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, active)
	if err != nil {
		return s.handleError(ctx, err)
	}

	orders, err := s.queries.GetRestaurantOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.times.orderSummaries(orders))
}

// GetRestaurantOrder handles GET /api/v1/restaurants/{restaurant_id}/orders/{order_id}.
func (s *Server) GetRestaurantOrder(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurant_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	orderID, err := pathID(ctx, "order_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	query, err := queries.NewGetRestaurantOrderQuery(restaurantID, orderID)
	if err != nil {
		return s.handleError(ctx, err)
	}

	detail, err := s.queries.GetRestaurantOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.times.restaurantOrder(detail))
}

// GetAvailableOrders handles GET /api/v1/couriers/available_orders.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	orders, err := s.queries.GetAvailableOrders.Handle(ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.times.availableOrders(orders))
}

// GetCourierOrders handles GET /api/v1/couriers/orders.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	allOrders, err := queryFlag(ctx, "all_orders")
	if err != nil {
		return s.handleError(ctx, err)
	}
	query, err := queries.NewGetCourierOrdersQuery(identityFrom(ctx).ID, allOrders)
	if err != nil {
		return s.handleError(ctx, err)
	}

	orders, err := s.queries.GetCourierOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.times.courierOrders(orders))
}

// ClaimOrder handles POST /api/v1/couriers/orders/{order_id}.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	cmd, err := commands.NewClaimOrderCommand(identityFrom(ctx).ID, orderID)
	if err != nil {
		return s.handleError(ctx, err)
	}

	if err = s.commands.ClaimOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles PUT /api/v1/couriers/orders/{order_id}.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	cmd, err := commands.NewCompleteOrderCommand(identityFrom(ctx).ID, orderID)
	if err != nil {
		return s.handleError(ctx, err)
	}

	if err = s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/users/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	active, err := queryFlag(ctx, "active")
	if err != nil {
		return s.handleError(ctx, err)
	}
	query, err := queries.NewGetUserOrdersQuery(identityFrom(ctx).ID, active)
	if err != nil {
		return s.handleError(ctx, err)
	}

	orders, err := s.queries.GetUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.times.orderSummaries(orders))
}

// GetUserOrder handles GET /api/v1/users/orders/{order_id}.
func (s *Server) GetUserOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	query, err := queries.NewGetUserOrderQuery(identityFrom(ctx).ID, orderID)
	if err != nil {
		return s.handleError(ctx, err)
	}

	detail, err := s.queries.GetUserOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.times.userOrder(detail))
}

// GetShippingCost handles GET /api/v1/users/shipping_cost/{restaurant_id}.
func (s *Server) GetShippingCost(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurant_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	query, err := queries.NewGetShippingCostQuery(identityFrom(ctx).ID, restaurantID)
	if err != nil {
		return s.handleError(ctx, err)
	}

	cost, err := s.queries.GetShippingCost.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShippingCostResponse{ShippingCost: cost})
}

// PlaceOrder handles POST /api/v1/users/orders/{restaurant_id}.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurant_id")
	if err != nil {
		return s.handleError(ctx, err)
	}
	cmd, err := commands.NewPlaceOrderCommand(identityFrom(ctx).ID, restaurantID)
	if err != nil {
		return s.handleError(ctx, err)
	}

	placed, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlacedOrderResponse{
		ID:           placed.Order.ID().Int64(),
		Status:       placed.Order.Status().String(),
		StartTime:    s.times.format(placed.Order.StartTime()),
		RestaurantID: placed.Order.RestaurantID().Int64(),
		ShippingCost: placed.ShippingCost,
	})
}

func newPerson(request RegisterCourierRequest) (kernel.Person, error) {
	phone, err := kernel.NewPhoneNumber(request.PhoneNumber)
	if err != nil {
		return kernel.Person{}, err
	}
	return kernel.NewPerson(request.Name, request.Surname, phone)
}

func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(raw)
}

// queryFlag reports whether the query parameter is present, whatever its value.
func queryFlag(ctx echo.Context, name string) (bool, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value); err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value != nil, nil
}
