// File: timeofday.go
// Title: Time-of-Day Value
// Description: Defines TimeOfDay, its validated constructors and setters,
//              accessors and ordering.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

// Field bounds (exclusive)
const (
	HoursPerDay      = 24
	MinutesPerHour   = 60
	SecondsPerMinute = 60
	MillisPerSecond  = 1000
	MillisPerMinute  = MillisPerSecond * SecondsPerMinute
	MillisPerHour    = MillisPerMinute * MinutesPerHour
	MillisPerDay     = MillisPerHour * HoursPerDay
)

// TimeOfDay is a wall clock time without date: hour 0-23, minute 0-59,
// second 0-59, millisecond 0-999. The zero value is midnight.
//
// Fields are only changed through validated setters, so every TimeOfDay
// obtained without an error is in range.
type TimeOfDay struct {
	hour        uint8
	minute      uint8
	second      uint8
	millisecond uint16
}

// Midnight is 00:00:00.000
var Midnight = TimeOfDay{}

// New returns the time of day for the given fields
func New(hour, minute, second, millisecond int) (TimeOfDay, error) {
	return defaultValidator.New(hour, minute, second, millisecond)
}

// MustNew is like New but panics on invalid fields. Intended for constants
// and tests.
func MustNew(hour, minute, second, millisecond int) TimeOfDay {
	t, err := New(hour, minute, second, millisecond)
	if err != nil {
		panic(err)
	}
	return t
}

func validFields(hour, minute, second, millisecond int) bool {
	return inRange(hour, HoursPerDay) &&
		inRange(minute, MinutesPerHour) &&
		inRange(second, SecondsPerMinute) &&
		inRange(millisecond, MillisPerSecond)
}

func inRange(v, bound int) bool {
	return v >= 0 && v < bound
}

// Set replaces all four fields. On error t is left unchanged.
func (t *TimeOfDay) Set(hour, minute, second, millisecond int) error {
	return t.set("timex.Set", hour, minute, second, millisecond)
}

func (t *TimeOfDay) set(op string, hour, minute, second, millisecond int) error {
	if !validFields(hour, minute, second, millisecond) {
		return newInvalidTimeError(op, hour, minute, second, millisecond)
	}

	t.hour = uint8(hour)
	t.minute = uint8(minute)
	t.second = uint8(second)
	t.millisecond = uint16(millisecond)
	return nil
}

// SetHour replaces the hour. The other fields are not re-validated.
func (t *TimeOfDay) SetHour(hour int) error {
	if !inRange(hour, HoursPerDay) {
		return newInvalidTimeError("timex.SetHour", hour, t.Minute(), t.Second(), t.Millisecond())
	}
	t.hour = uint8(hour)
	return nil
}

// SetMinute replaces the minute
func (t *TimeOfDay) SetMinute(minute int) error {
	if !inRange(minute, MinutesPerHour) {
		return newInvalidTimeError("timex.SetMinute", t.Hour(), minute, t.Second(), t.Millisecond())
	}
	t.minute = uint8(minute)
	return nil
}

// SetSecond replaces the second
func (t *TimeOfDay) SetSecond(second int) error {
	if !inRange(second, SecondsPerMinute) {
		return newInvalidTimeError("timex.SetSecond", t.Hour(), t.Minute(), second, t.Millisecond())
	}
	t.second = uint8(second)
	return nil
}

// SetMillisecond replaces the millisecond
func (t *TimeOfDay) SetMillisecond(millisecond int) error {
	if !inRange(millisecond, MillisPerSecond) {
		return newInvalidTimeError("timex.SetMillisecond", t.Hour(), t.Minute(), t.Second(), millisecond)
	}
	t.millisecond = uint16(millisecond)
	return nil
}

// Hour returns the hour (0-23)
func (t TimeOfDay) Hour() int { return int(t.hour) }

// Minute returns the minute (0-59)
func (t TimeOfDay) Minute() int { return int(t.minute) }

// Second returns the second (0-59)
func (t TimeOfDay) Second() int { return int(t.second) }

// Millisecond returns the millisecond (0-999)
func (t TimeOfDay) Millisecond() int { return int(t.millisecond) }

// Components returns the four fields as integers
func (t TimeOfDay) Components() Components {
	return Components{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Millisecond(),
	}
}

// MillisOfDay returns the number of milliseconds since midnight
func (t TimeOfDay) MillisOfDay() int64 {
	return int64(t.hour)*MillisPerHour +
		int64(t.minute)*MillisPerMinute +
		int64(t.second)*MillisPerSecond +
		int64(t.millisecond)
}

// Compare returns -1, 0 or +1 ordering by hour, minute, second, millisecond
func (t TimeOfDay) Compare(u TimeOfDay) int {
	switch {
	case t.hour != u.hour:
		return compareInt(int(t.hour), int(u.hour))
	case t.minute != u.minute:
		return compareInt(int(t.minute), int(u.minute))
	case t.second != u.second:
		return compareInt(int(t.second), int(u.second))
	default:
		return compareInt(int(t.millisecond), int(u.millisecond))
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether t and u are the same time of day
func (t TimeOfDay) Equal(u TimeOfDay) bool { return t.Compare(u) == 0 }

// Before reports whether t is earlier in the day than u
func (t TimeOfDay) Before(u TimeOfDay) bool { return t.Compare(u) < 0 }

// After reports whether t is later in the day than u
func (t TimeOfDay) After(u TimeOfDay) bool { return t.Compare(u) > 0 }

// BeforeOrEqual reports whether t is not later than u
func (t TimeOfDay) BeforeOrEqual(u TimeOfDay) bool { return t.Compare(u) <= 0 }

// AfterOrEqual reports whether t is not earlier than u
func (t TimeOfDay) AfterOrEqual(u TimeOfDay) bool { return t.Compare(u) >= 0 }
