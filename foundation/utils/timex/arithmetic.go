// File: arithmetic.go
// Title: Time-of-Day Arithmetic
// Description: Modular 24 hour arithmetic with carry propagation between
//              fields, Span application and the gap between two values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

// addField adds delta to a field with the given range. It returns the new
// field value and the carry into the next larger field.
func addField(current, delta, bound int) (value, carry int) {
	carry = delta / bound
	value = delta%bound + current

	if value >= bound {
		carry++
		value -= bound
	} else if value < 0 {
		carry--
		value += bound
	}
	return value, carry
}

// AddHours returns t moved by hours, wrapping within the day. Whole days are
// discarded.
func (t TimeOfDay) AddHours(hours int) TimeOfDay {
	if hours == 0 {
		return t
	}
	value, _ := addField(int(t.hour), hours, HoursPerDay)
	t.hour = uint8(value)
	return t
}

// AddMinutes returns t moved by minutes, carrying into the hour
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	if minutes == 0 {
		return t
	}
	value, carry := addField(int(t.minute), minutes, MinutesPerHour)
	t.minute = uint8(value)
	if carry != 0 {
		t = t.AddHours(carry)
	}
	return t
}

// AddSeconds returns t moved by seconds, carrying into the minute
func (t TimeOfDay) AddSeconds(seconds int) TimeOfDay {
	if seconds == 0 {
		return t
	}
	value, carry := addField(int(t.second), seconds, SecondsPerMinute)
	t.second = uint8(value)
	if carry != 0 {
		t = t.AddMinutes(carry)
	}
	return t
}

// AddMilliseconds returns t moved by milliseconds, carrying into the second
func (t TimeOfDay) AddMilliseconds(milliseconds int) TimeOfDay {
	if milliseconds == 0 {
		return t
	}
	value, carry := addField(int(t.millisecond), milliseconds, MillisPerSecond)
	t.millisecond = uint16(value)
	if carry != 0 {
		t = t.AddSeconds(carry)
	}
	return t
}

// Add returns t moved by span. A negative span moves backwards.
func (t TimeOfDay) Add(span Span) TimeOfDay {
	sign := 1
	if span.Negative() {
		sign = -1
	}

	return t.AddHours(sign * span.Hours()).
		AddMinutes(sign * span.Minutes()).
		AddSeconds(sign * span.Seconds()).
		AddMilliseconds(sign * span.Milliseconds())
}

// Sub returns t moved by span in the opposite direction
func (t TimeOfDay) Sub(span Span) TimeOfDay {
	return t.Add(span.WithNegative(!span.Negative()))
}

// Between returns the span separating t from u on the 24 hour clock.
//
// The result is anti-symmetric: t.Between(u) == u.Between(t).Negate(). When t
// is not earlier than u the result is non-negative. The gap is measured the
// short way around the clock, so 23:00 and 01:00 are two hours apart across
// midnight and the magnitude never exceeds 12 hours.
//
// This is not the plain difference of the two clock readings: 20:00 and 01:00
// are reported as 5 hours apart, not 19. Spans longer than half a day need
// clockwise arithmetic on MillisOfDay.
func (t TimeOfDay) Between(u TimeOfDay) Span {
	if t.Equal(u) {
		return Span{}
	}

	if u.After(t) {
		return u.Between(t).Negate()
	}

	total := t.MillisOfDay() - u.MillisOfDay()
	if total > MillisPerDay/2 {
		total = MillisPerDay - total
	}
	return spanFromMillis(total, false)
}
