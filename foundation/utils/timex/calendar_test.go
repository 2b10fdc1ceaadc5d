// File: calendar_test.go
// Title: Calendar Interop Tests
// Description: Tests for conversion from and to time.Time and epoch seconds.
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

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 13, 14, 15, 999000000, time.UTC)
	if got := FromTime(ts); got != MustNew(13, 14, 15, 0) {
		t.Errorf("FromTime() = %v, want 13:14:15", got)
	}

	zone := time.FixedZone("UTC+2", 2*3600)
	if got := FromTime(ts.In(zone)); got != MustNew(15, 14, 15, 0) {
		t.Errorf("FromTime() in zone = %v, want 15:14:15", got)
	}
}

func TestFromUnix(t *testing.T) {
	const sec = 1700000000
	local := time.Unix(sec, 0).Local()
	want := MustNew(local.Hour(), local.Minute(), local.Second(), 0)
	if got := FromUnix(sec); got != want {
		t.Errorf("FromUnix() = %v, want %v", got, want)
	}
}

func TestNow(t *testing.T) {
	for name, fn := range map[string]func() TimeOfDay{"Now": Now, "NowUTC": NowUTC} {
		if got := fn(); got.Millisecond() != 0 {
			t.Errorf("%s() = %v, want zero millisecond", name, got)
		}
	}

	before := time.Now().UTC()
	got := NowUTC()
	after := time.Now().UTC()
	if got != FromTime(before) && got != FromTime(after) {
		t.Errorf("NowUTC() = %v, want between %v and %v", got, FromTime(before), FromTime(after))
	}
}

func TestDiffSeconds(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeOfDay
		want float64
	}{
		{"one hour", MustNew(1, 0, 0, 0), Midnight, 3600},
		{"negative", Midnight, MustNew(0, 1, 30, 0), -90},
		{"milliseconds ignored", MustNew(0, 0, 1, 999), Midnight, 1},
		{"equal", MustNew(12, 0, 0, 0), MustNew(12, 0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DiffSeconds(tt.b); got != tt.want {
				t.Errorf("DiffSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOnDate(t *testing.T) {
	day := time.Date(2025, time.July, 4, 18, 0, 0, 0, time.UTC)
	got := MustNew(7, 8, 9, 10).OnDate(day)
	want := time.Date(2025, time.July, 4, 7, 8, 9, 10000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("OnDate() = %v, want %v", got, want)
	}
}
