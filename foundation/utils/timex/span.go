// File: span.go
// Title: Signed Time Span
// Description: Span is the duration type used for time-of-day arithmetic:
//              unsigned hour, minute, second and millisecond components plus
//              a separate sign flag. Converts to time.Duration and to the
//              protobuf Duration well-known type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
)

// Span is a signed span of hours, minutes, seconds and milliseconds.
// Components are not required to be normalized; Hours may exceed 23.
type Span struct {
	hours        uint32
	minutes      uint32
	seconds      uint32
	milliseconds uint32
	negative     bool
}

// NewSpan returns a span with the given components and sign
func NewSpan(hours, minutes, seconds, milliseconds uint32, negative bool) Span {
	return Span{
		hours:        hours,
		minutes:      minutes,
		seconds:      seconds,
		milliseconds: milliseconds,
		negative:     negative,
	}
}

// SpanOf converts d into a normalized span. Precision below one millisecond
// is truncated.
func SpanOf(d time.Duration) Span {
	ms := d.Milliseconds()
	if ms < 0 {
		return spanFromMillis(-ms, true)
	}
	return spanFromMillis(ms, false)
}

func spanFromMillis(total int64, negative bool) Span {
	hours := total / MillisPerHour
	total %= MillisPerHour

	minutes := total / MillisPerMinute
	total %= MillisPerMinute

	seconds := total / MillisPerSecond
	total %= MillisPerSecond

	return Span{
		hours:        uint32(hours),
		minutes:      uint32(minutes),
		seconds:      uint32(seconds),
		milliseconds: uint32(total),
		negative:     negative && (hours|minutes|seconds|total) != 0,
	}
}

// Hours returns the hour component
func (s Span) Hours() int { return int(s.hours) }

// Minutes returns the minute component
func (s Span) Minutes() int { return int(s.minutes) }

// Seconds returns the second component
func (s Span) Seconds() int { return int(s.seconds) }

// Milliseconds returns the millisecond component
func (s Span) Milliseconds() int { return int(s.milliseconds) }

// Negative reports whether the span points backwards
func (s Span) Negative() bool { return s.negative }

// WithNegative returns s with the sign flag set to negative
func (s Span) WithNegative(negative bool) Span {
	s.negative = negative
	return s
}

// Negate returns s with the sign flipped. A zero span stays non-negative.
func (s Span) Negate() Span {
	if s.IsZero() {
		s.negative = false
		return s
	}
	s.negative = !s.negative
	return s
}

// IsZero reports whether all components are zero
func (s Span) IsZero() bool {
	return s.hours == 0 && s.minutes == 0 && s.seconds == 0 && s.milliseconds == 0
}

// TotalMilliseconds returns the signed length of s in milliseconds
func (s Span) TotalMilliseconds() int64 {
	total := int64(s.hours)*MillisPerHour +
		int64(s.minutes)*MillisPerMinute +
		int64(s.seconds)*MillisPerSecond +
		int64(s.milliseconds)
	if s.negative {
		return -total
	}
	return total
}

// Duration converts s to a time.Duration
func (s Span) Duration() time.Duration {
	return time.Duration(s.TotalMilliseconds()) * time.Millisecond
}

// Normalize returns s with components carried into range (minutes, seconds
// below 60, milliseconds below 1000)
func (s Span) Normalize() Span {
	total := s.TotalMilliseconds()
	if total < 0 {
		return spanFromMillis(-total, true)
	}
	return spanFromMillis(total, false)
}

// String formats s as [-]HH:MM:SS.mmm
func (s Span) String() string {
	sign := ""
	if s.negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, s.hours, s.minutes, s.seconds, s.milliseconds)
}

// ToProto converts s to a protobuf Duration
func (s Span) ToProto() *durationpb.Duration {
	return durationpb.New(s.Duration())
}

// SpanFromProto converts a protobuf Duration into a normalized span
func SpanFromProto(d *durationpb.Duration) (Span, error) {
	if d == nil {
		return Span{}, mdwerror.New("nil duration").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.SpanFromProto")
	}
	if err := d.CheckValid(); err != nil {
		return Span{}, mdwerror.Wrap(err, "invalid duration").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.SpanFromProto")
	}
	return SpanOf(d.AsDuration()), nil
}
