// Package timex implements the time-of-day value used by the mdwtime data
// access layer.
//
// Package: timex
// Title: Time-of-Day Values for Database Bindings
// Description: A date-free wall clock value (hour, minute, second, millisecond)
//              with validated construction, comparison, 24 hour modular
//              arithmetic, a companion signed Span type, string parsing and
//              formatting, and conversion to and from the database client's
//              native time structure, time.Time, SQL columns, YAML, JSON and CBOR.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-16 v0.2.0: Replaced the calendar helpers with the TimeOfDay and Span types
//
// # Construction
//
// Every constructor routes through one validated setter. Out of range fields
// produce a *mdwerror.Error with code INVALID_TIME whose details carry all four
// attempted values:
//
//	t, err := timex.New(12, 30, 15, 500)
//	t, err := timex.Parse("12:30:15.5")
//	t := timex.FromTime(time.Now())          // millisecond forced to 0
//	t, err := timex.FromNative(native)       // SecondPart ignored
//
// Values coming from calendar or native sources never carry milliseconds,
// because those sources do not either. Explicit construction keeps full precision.
//
// # Arithmetic
//
// AddHours, AddMinutes, AddSeconds and AddMilliseconds return new values and
// wrap inside the 24 hour cycle. Carries propagate from milliseconds up to
// hours; whole days are discarded. Add and Sub apply a Span, Between returns
// the Span separating two values.
//
//	t := timex.MustNew(23, 0, 0, 0).AddHours(2) // 01:00:00
//
// # Parsing
//
// Parse reads the positional layout HH:MM:SS[.fff]. Hour is read from the first
// two characters, minute from characters 3-4 when the string has at least 3
// characters, seconds (with fraction) from character 6 onward when it has at
// least 6. Separator characters are not checked.
//
// # Diagnostics
//
// A Validator carries an injected Diagnostics sink that receives every
// rejected input. The package level functions use a validator without a sink.
package timex
