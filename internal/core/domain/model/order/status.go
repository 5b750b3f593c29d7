package order

import (
	"fmt"

	"courierservice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strict forward-only state machine:
//
//	Searching ──> InTransit ──> Delivered
//
// No backward or skipping transitions exist. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Searching is the initial status: the order waits for any courier to claim it.
	Searching

	// InTransit indicates a courier claimed the order and is delivering it.
	InTransit

	// Delivered indicates the courier completed the delivery.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Searching: "SEARCHING",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

// ActiveStatuses lists the statuses of orders that are not delivered yet.
func ActiveStatuses() []Status {
	return []Status{Searching, InTransit}
}

// ParseStatus converts the persisted representation back into a Status.
func ParseStatus(raw string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", raw))
}

// Validate checks if the Status value is one of Searching, InTransit, Delivered.
func (s Status) Validate() error {
	if s != Searching && s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted and wire name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the order still awaits delivery.
func (s Status) IsActive() bool {
	return s == Searching || s == InTransit
}

// ValidateCanHaveCourier validates the consistency between status and courier binding.
//
// Business Rules:
//   - Searching orders must not have a courier
//   - InTransit and Delivered orders must have a courier
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Searching {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}

// ValidateCanHaveEndTime validates that only delivered orders carry a completion time.
func (s Status) ValidateCanHaveEndTime(endTime bool) error {
	if endTime != (s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"end time is invalid",
			fmt.Errorf("%s order cannot have end time set to %t", s, endTime),
		)
	}
	return nil
}

// Claim transitions Searching to InTransit. Any other source status is rejected.
func (s Status) Claim() (Status, error) {
	if s != Searching {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s),
		)
	}

	return InTransit, nil
}

// Deliver transitions InTransit to Delivered. Any other source status is rejected.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}

	return Delivered, nil
}
