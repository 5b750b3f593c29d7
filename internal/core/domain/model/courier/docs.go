// Package courier provides the Courier aggregate: an account that claims
// SEARCHING orders and delivers them.
//
// Key business rules:
//   - couriers start Available
//   - taking an order makes a courier Busy; delivering it makes them Available again
//   - a Busy courier cannot take another order
package courier
