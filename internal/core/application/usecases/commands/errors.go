package commands

import "errors"

// Errors returned by command handlers. Their messages are safe to show to API clients.
var (
	ErrUserAlreadyRegistered    = errors.New("user already registered")
	ErrCourierAlreadyRegistered = errors.New("courier already registered")
	ErrRestaurantAlreadyExists  = errors.New("restaurant with this name already exists")
	ErrRestaurantNotFound       = errors.New("cannot place order, restaurant not found")
	ErrOrderNotFound            = errors.New("order not found")
	ErrCourierHasActiveOrder    = errors.New("courier already has an active order")
	ErrInvalidCredentials       = errors.New("invalid phone number or password")

	ErrPasswordIsRequired = errors.New("password is required")
)
