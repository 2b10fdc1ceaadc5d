// File: calendar.go
// Title: Calendar Interop
// Description: Conversion between TimeOfDay and time.Time. Only hour, minute
//              and second survive the conversion; sub-second precision of
//              calendar values is dropped.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

import "time"

// referenceYear pins the synthetic date used for epoch conversion
const referenceYear = 1900

// FromTime returns the wall clock time of ts in ts's location. The
// millisecond is always zero.
func FromTime(ts time.Time) TimeOfDay {
	return TimeOfDay{
		hour:   uint8(ts.Hour()),
		minute: uint8(ts.Minute()),
		second: uint8(ts.Second()),
	}
}

// FromUnix returns the local wall clock time of the given epoch seconds
func FromUnix(sec int64) TimeOfDay {
	return FromTime(time.Unix(sec, 0).Local())
}

// Now returns the current local time of day
func Now() TimeOfDay {
	return FromTime(time.Now().Local())
}

// NowUTC returns the current UTC time of day
func NowUTC() TimeOfDay {
	return FromTime(time.Now().UTC())
}

// Unix returns the epoch seconds of t placed on 1 January 1900 in the local
// zone. The value is only meaningful relative to other results of Unix.
func (t TimeOfDay) Unix() int64 {
	return time.Date(referenceYear, time.January, 1,
		int(t.hour), int(t.minute), int(t.second), 0, time.Local).Unix()
}

// DiffSeconds returns t.Unix() - u.Unix() as a float
func (t TimeOfDay) DiffSeconds(u TimeOfDay) float64 {
	return float64(t.Unix() - u.Unix())
}

// OnDate returns t placed on the date of day in day's location, including
// the millisecond.
func (t TimeOfDay) OnDate(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, int(t.hour), int(t.minute), int(t.second),
		int(t.millisecond)*int(time.Millisecond), day.Location())
}
