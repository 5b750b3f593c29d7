package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries what NewRouter needs besides the handlers.
type RouterConfig struct {
	Doc      *openapi3.T
	LogLevel log.Lvl
	Logger   *slog.Logger
}

// NewRouter builds the echo instance serving the API, /health and the Swagger UI.
func NewRouter(server *Server, auth *Authenticator, cfg RouterConfig) (*echo.Echo, error) {
	validator, err := RequestValidator(cfg.Doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(cfg.Doc); err != nil {
		return nil, err
	}

	logger := cfg.Logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)

	api.POST("/users", server.RegisterUser)
	api.POST("/users/token", server.IssueUserToken)
	api.POST("/couriers", server.RegisterCourier)
	api.POST("/couriers/token", server.IssueCourierToken)

	api.POST("/restaurants", server.CreateRestaurant)
	api.GET("/restaurants/:restaurant_id/orders", server.GetRestaurantOrders)
	api.GET("/restaurants/:restaurant_id/orders/:order_id", server.GetRestaurantOrder)

	couriers := api.Group("/couriers", auth.RequireCourier())
	couriers.GET("/available_orders", server.GetAvailableOrders)
	couriers.GET("/orders", server.GetCourierOrders)
	couriers.POST("/orders/:order_id", server.ClaimOrder)
	couriers.PUT("/orders/:order_id", server.CompleteOrder)

	users := api.Group("/users", auth.RequireUser())
	users.GET("/orders", server.GetUserOrders)
	users.GET("/orders/:order_id", server.GetUserOrder)
	users.GET("/shipping_cost/:restaurant_id", server.GetShippingCost)
	users.POST("/orders/:restaurant_id", server.PlaceOrder)

	return e, nil
}
