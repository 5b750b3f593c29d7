package queries

import "errors"

// Errors returned by query handlers. Their messages are safe to show to API clients.
var (
	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrRestaurantOrderNotFound = errors.New("order with these restaurant_id and order_id not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrIdentityNotFound        = errors.New("identity not found")
)
