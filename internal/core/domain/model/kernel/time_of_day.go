package kernel

import (
	"fmt"
	"time"

	"courierservice/internal/pkg/errs"
	"courierservice/internal/pkg/guard"
)

// TimeOfDayLayout is the wire and storage format of TimeOfDay.
const TimeOfDayLayout = "15:04:05"

var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via ParseTimeOfDay or NewTimeOfDay constructors")

// TimeOfDay is a wall-clock time without a date, e.g. a restaurant opening hour.
type TimeOfDay struct {
	offset time.Duration
	guard  guard.ConstructorGuard
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	switch {
	case hour < 0 || hour > 23:
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	case minute < 0 || minute > 59:
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	case second < 0 || second > 59:
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("second", second, 0, 59)
	}

	return TimeOfDay{
		offset: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeOfDay accepts "HH:MM:SS" and the shorter "HH:MM".
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	for _, layout := range []string{TimeOfDayLayout, "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
		"time of day", fmt.Errorf("%q is not in %s format", raw, TimeOfDayLayout))
}

func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.offset < other.offset
}

func (t TimeOfDay) String() string {
	total := int(t.offset / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
