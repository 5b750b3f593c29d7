// Package order provides the Order aggregate of the order ledger and its
// lifecycle state machine.
//
// The package includes:
//   - Order: references a restaurant, a user and (after claim) a courier
//   - Status: Searching -> InTransit -> Delivered, forward-only
//
// Key business rules:
//   - an order can be claimed only while Searching
//   - the courier is bound exactly once, at claim
//   - only the bound courier can complete an InTransit order
//   - the completion time is set exactly once, at delivery
//   - orders are never deleted
package order
