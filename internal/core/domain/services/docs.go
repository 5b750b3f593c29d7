// Package services provides domain services that coordinate more than one
// aggregate of the courier service.
//
// The package includes:
//   - DeliveryLifecycle: applies claim and completion to an order and its courier together
//   - ShippingEstimator: the stub delivery price for a user/restaurant pair
package services
