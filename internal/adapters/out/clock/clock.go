// Package clock provides the server clock used to stamp orders.
package clock

import (
	"time"

	"courierservice/internal/core/ports"
)

var _ ports.Clock = (*LocalClock)(nil)

// LocalClock reports wall time in a fixed location at second precision.
type LocalClock struct {
	location *time.Location
	now      func() time.Time
}

func NewLocalClock(location *time.Location) *LocalClock {
	return &LocalClock{location: location, now: time.Now}
}

// NewLocalClockAt returns a clock driven by now. Used by tests.
func NewLocalClockAt(location *time.Location, now func() time.Time) *LocalClock {
	return &LocalClock{location: location, now: now}
}

func (c *LocalClock) Now() time.Time {
	return c.now().In(c.location).Truncate(time.Second)
}
