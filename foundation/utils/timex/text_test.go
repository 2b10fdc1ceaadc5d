// File: text_test.go
// Title: Time-of-Day Text Form Tests
// Description: Tests for positional parsing, formatting and the text, JSON
//              and YAML encodings.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

import (
	"encoding/json"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		want          TimeOfDay
		wantMalformed bool
		wantInvalid   bool
	}{
		{name: "hour only", input: "12", want: MustNew(12, 0, 0, 0)},
		{name: "hour and minute", input: "12:30", want: MustNew(12, 30, 0, 0)},
		{name: "full", input: "12:30:15", want: MustNew(12, 30, 15, 0)},
		{name: "half second", input: "12:30:15.5", want: MustNew(12, 30, 15, 500)},
		{name: "milliseconds", input: "12:30:15.123", want: MustNew(12, 30, 15, 123)},
		{name: "sub millisecond truncated", input: "12:30:15.9999", want: MustNew(12, 30, 15, 999)},
		{name: "fraction close to a second", input: "00:00:00.999999999", want: MustNew(0, 0, 0, 999)},
		{name: "one millisecond", input: "00:00:00.001", want: MustNew(0, 0, 0, 1)},
		{name: "exponent seconds", input: "12:30:1.5e1", want: MustNew(12, 30, 15, 0)},
		{name: "single minute digit", input: "12:3", want: MustNew(12, 3, 0, 0)},
		{name: "trailing separator", input: "12:", want: MustNew(12, 0, 0, 0)},
		{name: "empty seconds", input: "12:30:", want: MustNew(12, 30, 0, 0)},
		{name: "separators not checked", input: "12x30x15", want: MustNew(12, 30, 15, 0)},
		{name: "empty", input: "", wantMalformed: true},
		{name: "single character", input: "1", wantMalformed: true},
		{name: "non-numeric hour", input: "ab:00", wantMalformed: true},
		{name: "non-numeric minute", input: "12:ab", wantMalformed: true},
		{name: "non-numeric seconds", input: "12:30:xx", wantMalformed: true},
		{name: "infinite seconds", input: "12:30:Inf", wantMalformed: true},
		{name: "hour out of range", input: "25:00:00", wantInvalid: true},
		{name: "minute out of range", input: "12:60", wantInvalid: true},
		{name: "negative seconds", input: "12:30:-5", wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			switch {
			case tt.wantMalformed:
				if !IsMalformed(err) {
					t.Errorf("Parse(%q) error = %v, want INVALID_FORMAT", tt.input, err)
				}
			case tt.wantInvalid:
				if !IsInvalidTime(err) {
					t.Errorf("Parse(%q) error = %v, want INVALID_TIME", tt.input, err)
				}
			default:
				if err != nil {
					t.Fatalf("Parse(%q) error = %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
				}
			}
		})
	}
}

func TestParseInvalidPayload(t *testing.T) {
	_, err := Parse("25:00:00")
	c, ok := InvalidComponents(err)
	if !ok || c != (Components{Hour: 25}) {
		t.Errorf("InvalidComponents() = %+v, %v", c, ok)
	}
}

func TestSetString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantErr bool
		want    TimeOfDay
	}{
		{"valid", "10:20:30.5", true, false, MustNew(10, 20, 30, 500)},
		{"too short", "1", false, false, MustNew(1, 2, 3, 4)},
		{"malformed", "xx:yy", false, false, MustNew(1, 2, 3, 4)},
		{"out of range", "25:00", false, true, MustNew(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod := MustNew(1, 2, 3, 4)
			ok, err := tod.SetString(tt.input)
			if ok != tt.wantOK {
				t.Errorf("SetString() ok = %v, want %v", ok, tt.wantOK)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("SetString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !IsInvalidTime(err) {
				t.Errorf("SetString() error = %v, want INVALID_TIME", err)
			}
			if tod != tt.want {
				t.Errorf("after SetString() = %v, want %v", tod, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		tod        TimeOfDay
		withMillis bool
		want       string
	}{
		{MustNew(9, 5, 3, 0), true, "09:05:03"},
		{MustNew(9, 5, 3, 0), false, "09:05:03"},
		{MustNew(9, 5, 3, 7), true, "09:05:03.007"},
		{MustNew(9, 5, 3, 7), false, "09:05:03"},
		{MustNew(23, 59, 59, 999), true, "23:59:59.999"},
		{Midnight, true, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tod.Format(tt.withMillis); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.withMillis, got, tt.want)
			}
		})
	}

	if got := fmt.Sprint(MustNew(1, 2, 3, 40)); got != "01:02:03.040" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for second := 0; second < SecondsPerMinute; second++ {
		for ms := 1; ms < MillisPerSecond; ms++ {
			want := MustNew(17, 42, second, ms)
			got, err := Parse(want.Format(true))
			if err != nil || got != want {
				t.Fatalf("Parse(%q) = %v, %v, want %v", want.Format(true), got, err, want)
			}
		}
	}

	zero := MustNew(17, 42, 1, 0)
	if zero.Format(true) != zero.Format(false) {
		t.Errorf("zero millisecond formats differ: %q, %q", zero.Format(true), zero.Format(false))
	}
}

func TestJSON(t *testing.T) {
	type payload struct {
		At TimeOfDay `json:"at"`
	}

	data, err := json.Marshal(payload{At: MustNew(7, 15, 0, 250)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"at":"07:15:00.250"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var got payload
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.At != MustNew(7, 15, 0, 250) {
		t.Errorf("Unmarshal() = %v", got.At)
	}

	if err := json.Unmarshal([]byte(`{"at":"24:00"}`), &got); !IsInvalidTime(err) {
		t.Errorf("Unmarshal() error = %v, want INVALID_TIME", err)
	}
}

func TestYAML(t *testing.T) {
	type payload struct {
		At TimeOfDay `yaml:"at"`
	}

	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "scalar", input: "at: \"07:15:00\"\n", want: MustNew(7, 15, 0, 0)},
		{name: "scalar with millis", input: "at: \"07:15:00.5\"\n", want: MustNew(7, 15, 0, 500)},
		{name: "mapping", input: "at:\n  hour: 7\n  minute: 15\n  millisecond: 20\n", want: MustNew(7, 15, 0, 20)},
		{name: "mapping out of range", input: "at:\n  hour: 30\n", wantErr: true},
		{name: "sequence", input: "at: [7, 15]\n", wantErr: true},
		{name: "malformed scalar", input: "at: x\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.At != tt.want {
				t.Errorf("Unmarshal() = %v, want %v", got.At, tt.want)
			}
		})
	}

	data, err := yaml.Marshal(payload{At: MustNew(22, 5, 9, 1)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back payload
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal(%q) error = %v", data, err)
	}
	if back.At != MustNew(22, 5, 9, 1) {
		t.Errorf("YAML round trip = %v", back.At)
	}
}
