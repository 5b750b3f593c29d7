package courier

import (
	"fmt"

	"courierservice/internal/pkg/errs"
)

// WorkStatus tells whether a courier is free to claim an order.
type WorkStatus int

const (
	UnknownWorkStatus WorkStatus = iota
	Available
	Busy
)

func getWorkStatusStrings() map[WorkStatus]string {
	return map[WorkStatus]string{
		UnknownWorkStatus: "UNKNOWN",
		Available:         "AVAILABLE",
		Busy:              "BUSY",
	}
}

func ParseWorkStatus(raw string) (WorkStatus, error) {
	for status, str := range getWorkStatusStrings() {
		if status != UnknownWorkStatus && str == raw {
			return status, nil
		}
	}
	return UnknownWorkStatus, errs.NewValueIsInvalidErrorWithCause(
		"work status is invalid", fmt.Errorf("%q is not a valid work status", raw))
}

func (s WorkStatus) Validate() error {
	if s != Available && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"work status is invalid", fmt.Errorf("%d is not a valid work status", s))
	}
	return nil
}

func (s WorkStatus) String() string {
	if str, ok := getWorkStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
