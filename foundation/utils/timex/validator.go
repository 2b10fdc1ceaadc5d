// File: validator.go
// Title: Validation Diagnostics
// Description: Validator routes rejected time values to an injected
//              diagnostics sink. The package-level constructors use a
//              validator without a sink, so nothing is reported unless a
//              caller opts in.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

import (
	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
)

// Diagnostics receives every INVALID_TIME error produced through a Validator
// before it is returned to the caller.
type Diagnostics interface {
	ReportInvalid(err *mdwerror.Error)
}

// DiagnosticsFunc adapts a function to the Diagnostics interface
type DiagnosticsFunc func(err *mdwerror.Error)

// ReportInvalid calls f(err)
func (f DiagnosticsFunc) ReportInvalid(err *mdwerror.Error) {
	f(err)
}

// Validator constructs and mutates TimeOfDay values, reporting rejected input
// to its Diagnostics. A Validator is safe for concurrent use if its
// Diagnostics is.
type Validator struct {
	diagnostics Diagnostics
}

// NewValidator returns a validator reporting to d. A nil d disables
// reporting.
func NewValidator(d Diagnostics) *Validator {
	return &Validator{diagnostics: d}
}

var defaultValidator = &Validator{}

// New returns the time of day for the given fields
func (v *Validator) New(hour, minute, second, millisecond int) (TimeOfDay, error) {
	var t TimeOfDay
	if err := v.Set(&t, hour, minute, second, millisecond); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// Set replaces all fields of t. On error t is left unchanged.
func (v *Validator) Set(t *TimeOfDay, hour, minute, second, millisecond int) error {
	return v.check(t.set("timex.Set", hour, minute, second, millisecond))
}

// SetHour replaces the hour of t like TimeOfDay.SetHour
func (v *Validator) SetHour(t *TimeOfDay, hour int) error {
	return v.check(t.SetHour(hour))
}

// SetMinute replaces the minute of t like TimeOfDay.SetMinute
func (v *Validator) SetMinute(t *TimeOfDay, minute int) error {
	return v.check(t.SetMinute(minute))
}

// SetSecond replaces the second of t like TimeOfDay.SetSecond
func (v *Validator) SetSecond(t *TimeOfDay, second int) error {
	return v.check(t.SetSecond(second))
}

// SetMillisecond replaces the millisecond of t like TimeOfDay.SetMillisecond
func (v *Validator) SetMillisecond(t *TimeOfDay, millisecond int) error {
	return v.check(t.SetMillisecond(millisecond))
}

// Check reports err to the diagnostics sink when it is an INVALID_TIME error
// from any source, such as a direct TimeOfDay setter, and returns it
// unchanged.
func (v *Validator) Check(err error) error {
	return v.check(err)
}

// Parse parses s like the package-level Parse
func (v *Validator) Parse(s string) (TimeOfDay, error) {
	return v.parse("timex.Parse", s)
}

// SetString parses s into t like TimeOfDay.SetString
func (v *Validator) SetString(t *TimeOfDay, s string) (bool, error) {
	parsed, err := v.parse("timex.SetString", s)
	if err != nil {
		if IsMalformed(err) {
			return false, nil
		}
		return false, err
	}
	*t = parsed
	return true, nil
}

// FromNative converts a native time structure like the package-level
// FromNative
func (v *Validator) FromNative(n NativeTime) (TimeOfDay, error) {
	var t TimeOfDay
	err := t.set("timex.FromNative", int(n.Hour), int(n.Minute), int(n.Second), 0)
	if err != nil {
		return TimeOfDay{}, v.check(err)
	}
	return t, nil
}

func (v *Validator) parse(op, s string) (TimeOfDay, error) {
	c, err := parseComponents(op, s)
	if err != nil {
		return TimeOfDay{}, err
	}

	var t TimeOfDay
	if err := t.set(op, c.Hour, c.Minute, c.Second, c.Millisecond); err != nil {
		return TimeOfDay{}, v.check(err)
	}
	return t, nil
}

// check reports err if it is a validation failure and returns it unchanged
func (v *Validator) check(err error) error {
	if err == nil {
		return nil
	}
	if mdwErr, ok := mdwerror.As(err); ok && mdwErr.Code() == mdwerror.CodeInvalidTime {
		v.report(mdwErr)
	}
	return err
}

func (v *Validator) report(err *mdwerror.Error) {
	if v == nil || v.diagnostics == nil {
		return
	}
	// A failing sink must not change the outcome for the caller.
	defer func() { _ = recover() }()
	v.diagnostics.ReportInvalid(err)
}
