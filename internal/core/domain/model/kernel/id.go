package kernel

import (
	"strconv"

	"courierservice/internal/pkg/errs"
)

// ID identifies a persisted aggregate. Identifiers are assigned by the store
// (serial columns), so a new aggregate carries the zero ID until it is added.
type ID int64

// NewID validates a raw identifier received from the outside world.
//
// Example:
//
//	id, err := kernel.NewID(7)
//	if err != nil {
//	    // id was zero or negative
//	}
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the identifier refers to a persisted aggregate.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, "max int64")
	}
	return nil
}

// IsZero reports whether the identifier has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
