package services

import (
	"math/rand/v2"

	"courierservice/internal/core/domain/model/kernel"
)

const (
	// SameStreetShippingCost is charged when the user lives on the restaurant's street.
	SameStreetShippingCost = 50
	// MinShippingCost and MaxShippingCost bound the random cost, [Min, Max).
	MinShippingCost = 200
	MaxShippingCost = 500
)

// ShippingEstimator prices a delivery. It does no routing: the same street
// costs a flat fee and anything else costs a uniformly drawn value from
// [MinShippingCost, MaxShippingCost).
type ShippingEstimator struct {
	intN func(n int) int
}

func NewShippingEstimator() ShippingEstimator {
	return ShippingEstimator{intN: rand.IntN}
}

// NewShippingEstimatorWithSource is used by tests to make the random branch deterministic.
// intN must return a value in [0, n).
func NewShippingEstimatorWithSource(intN func(n int) int) ShippingEstimator {
	return ShippingEstimator{intN: intN}
}

// Estimate returns the shipping cost from restaurant to destination.
func (e ShippingEstimator) Estimate(destination, restaurant kernel.Address) int {
	if destination.OnSameStreet(restaurant) {
		return SameStreetShippingCost
	}

	intN := e.intN
	if intN == nil {
		intN = rand.IntN
	}
	return MinShippingCost + intN(MaxShippingCost-MinShippingCost) //nolint:gosec // not a security value
}
