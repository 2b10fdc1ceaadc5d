// File: arithmetic_test.go
// Title: Time-of-Day Arithmetic Tests
// Description: Tests for wrapping field arithmetic, Span application and
//              Between.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

import (
	"testing"
	"time"
)

func TestAddFields(t *testing.T) {
	tests := []struct {
		name  string
		start TimeOfDay
		op    func(TimeOfDay) TimeOfDay
		want  TimeOfDay
	}{
		{"hours wrap forward", MustNew(23, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddHours(2) }, MustNew(1, 0, 0, 0)},
		{"hours borrow", MustNew(0, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddHours(-1) }, MustNew(23, 0, 0, 0)},
		{"hours drop whole days", MustNew(1, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddHours(49) }, MustNew(2, 0, 0, 0)},
		{"hours large negative", MustNew(0, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddHours(-25) }, MustNew(23, 0, 0, 0)},
		{"minutes carry", MustNew(10, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddMinutes(150) }, MustNew(12, 30, 0, 0)},
		{"minutes borrow", MustNew(10, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddMinutes(-61) }, MustNew(8, 59, 0, 0)},
		{"minutes across midnight", MustNew(23, 45, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddMinutes(30) }, MustNew(0, 15, 0, 0)},
		{"seconds full day", MustNew(12, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddSeconds(86400) }, MustNew(12, 0, 0, 0)},
		{"seconds borrow", MustNew(0, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddSeconds(-1) }, MustNew(23, 59, 59, 0)},
		{"millis carry to midnight", MustNew(23, 59, 59, 999), func(t TimeOfDay) TimeOfDay { return t.AddMilliseconds(1) }, MustNew(0, 0, 0, 0)},
		{"millis borrow to previous day", MustNew(0, 0, 0, 0), func(t TimeOfDay) TimeOfDay { return t.AddMilliseconds(-1) }, MustNew(23, 59, 59, 999)},
		{"millis zero", MustNew(5, 6, 7, 8), func(t TimeOfDay) TimeOfDay { return t.AddMilliseconds(0) }, MustNew(5, 6, 7, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.start
			got := tt.op(tt.start)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if tt.start != start {
				t.Errorf("receiver changed to %v", tt.start)
			}
		})
	}
}

func TestAddMatchesModularMillis(t *testing.T) {
	starts := []TimeOfDay{Midnight, MustNew(11, 59, 59, 999), MustNew(23, 30, 0, 1)}
	deltas := []int{0, 1, -1, 999, -1001, 59999, -3600001, MillisPerDay, -MillisPerDay - 7, 123456789}

	for _, start := range starts {
		for _, delta := range deltas {
			got := start.AddMilliseconds(delta).MillisOfDay()
			want := ((start.MillisOfDay()+int64(delta))%MillisPerDay + MillisPerDay) % MillisPerDay
			if got != want {
				t.Errorf("%v.AddMilliseconds(%d) = %d ms, want %d", start, delta, got, want)
			}
		}
	}
}

func TestAddSpan(t *testing.T) {
	tests := []struct {
		name  string
		start TimeOfDay
		span  Span
		add   TimeOfDay
		sub   TimeOfDay
	}{
		{
			name:  "positive across midnight",
			start: MustNew(23, 0, 0, 0),
			span:  NewSpan(1, 30, 0, 0, false),
			add:   MustNew(0, 30, 0, 0),
			sub:   MustNew(21, 30, 0, 0),
		},
		{
			name:  "negative millisecond",
			start: Midnight,
			span:  NewSpan(0, 0, 0, 1, true),
			add:   MustNew(23, 59, 59, 999),
			sub:   MustNew(0, 0, 0, 1),
		},
		{
			name:  "unnormalized components",
			start: MustNew(8, 0, 0, 0),
			span:  NewSpan(0, 90, 75, 1500, false),
			add:   MustNew(9, 31, 16, 500),
			sub:   MustNew(6, 28, 43, 500),
		},
		{
			name:  "zero",
			start: MustNew(8, 1, 2, 3),
			span:  Span{},
			add:   MustNew(8, 1, 2, 3),
			sub:   MustNew(8, 1, 2, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Add(tt.span); got != tt.add {
				t.Errorf("Add() = %v, want %v", got, tt.add)
			}
			if got := tt.start.Sub(tt.span); got != tt.sub {
				t.Errorf("Sub() = %v, want %v", got, tt.sub)
			}
			if got := tt.start.Add(tt.span).Sub(tt.span); got != tt.start {
				t.Errorf("Add().Sub() = %v, want %v", got, tt.start)
			}
		})
	}
}

func TestAddSpanOfDuration(t *testing.T) {
	start := MustNew(6, 15, 0, 0)
	for _, d := range []time.Duration{
		90 * time.Minute,
		-90 * time.Minute,
		36*time.Hour + 1500*time.Millisecond,
		-25 * time.Hour,
	} {
		got := start.Add(SpanOf(d)).MillisOfDay()
		want := ((start.MillisOfDay()+d.Milliseconds())%MillisPerDay + MillisPerDay) % MillisPerDay
		if got != want {
			t.Errorf("Add(SpanOf(%v)) = %d ms, want %d", d, got, want)
		}
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeOfDay
		want Span
	}{
		{"equal", MustNew(10, 0, 0, 0), MustNew(10, 0, 0, 0), Span{}},
		{"later minus earlier", MustNew(12, 0, 0, 0), MustNew(10, 30, 0, 0), NewSpan(1, 30, 0, 0, false)},
		{"earlier minus later", MustNew(10, 30, 0, 0), MustNew(12, 0, 0, 0), NewSpan(1, 30, 0, 0, true)},
		{"across midnight", MustNew(23, 0, 0, 0), MustNew(1, 0, 0, 0), NewSpan(2, 0, 0, 0, false)},
		{"across midnight reversed", MustNew(1, 0, 0, 0), MustNew(23, 0, 0, 0), NewSpan(2, 0, 0, 0, true)},
		{"all components", MustNew(13, 14, 15, 16), MustNew(12, 13, 14, 15), NewSpan(1, 1, 1, 1, false)},
		{"half day", MustNew(18, 0, 0, 0), MustNew(6, 0, 0, 0), NewSpan(12, 0, 0, 0, false)},
		{"over half a day takes the short way", MustNew(20, 0, 0, 0), MustNew(1, 0, 0, 0), NewSpan(5, 0, 0, 0, false)},
		{"short way across midnight is negative", MustNew(1, 0, 0, 0), MustNew(20, 0, 0, 0), NewSpan(5, 0, 0, 0, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Between(tt.b); got != tt.want {
				t.Errorf("Between() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBetweenAntiSymmetric(t *testing.T) {
	values := []TimeOfDay{
		Midnight,
		MustNew(0, 0, 0, 1),
		MustNew(1, 0, 0, 0),
		MustNew(6, 0, 0, 0),
		MustNew(11, 59, 59, 999),
		MustNew(12, 0, 0, 0),
		MustNew(18, 0, 0, 0),
		MustNew(23, 0, 0, 0),
		MustNew(23, 59, 59, 999),
	}

	for _, a := range values {
		for _, b := range values {
			ab, ba := a.Between(b), b.Between(a)
			if ab.Negate() != ba {
				t.Errorf("%v.Between(%v) = %v, reverse = %v", a, b, ab, ba)
			}
			if a.AfterOrEqual(b) && ab.Negative() {
				t.Errorf("%v.Between(%v) = %v, want non-negative", a, b, ab)
			}
			if ab.TotalMilliseconds() > MillisPerDay/2 || ab.TotalMilliseconds() < -MillisPerDay/2 {
				t.Errorf("%v.Between(%v) = %v exceeds half a day", a, b, ab)
			}
		}
	}
}
