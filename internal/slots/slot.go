package slots

import (
	"time"

	"github.com/msto63/mdwtime/foundation/utils/timex"
)

// Slot is a named window of the day from Start (inclusive) to End
// (exclusive). A slot whose End is before its Start runs past midnight.
type Slot struct {
	ID        string          `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Start     timex.TimeOfDay `json:"start" yaml:"start"`
	End       timex.TimeOfDay `json:"end" yaml:"end"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
}

// Definition describes a slot to be created
type Definition struct {
	Name  string
	Start timex.TimeOfDay
	End   timex.TimeOfDay
}

// WrapsMidnight reports whether the slot runs past midnight
func (s *Slot) WrapsMidnight() bool {
	return s.End.Before(s.Start)
}

// Length returns the time from Start forward to End
func (s *Slot) Length() timex.Span {
	ms := s.End.MillisOfDay() - s.Start.MillisOfDay()
	if ms < 0 {
		ms += timex.MillisPerDay
	}
	return timex.SpanOf(time.Duration(ms) * time.Millisecond)
}

// Contains reports whether t falls inside the slot
func (s *Slot) Contains(t timex.TimeOfDay) bool {
	if s.WrapsMidnight() {
		return t.AfterOrEqual(s.Start) || t.Before(s.End)
	}
	return t.AfterOrEqual(s.Start) && t.Before(s.End)
}

// Remaining returns the time from t until the slot ends. It is zero when t
// is outside the slot.
func (s *Slot) Remaining(t timex.TimeOfDay) timex.Span {
	if !s.Contains(t) {
		return timex.Span{}
	}
	ms := s.End.MillisOfDay() - t.MillisOfDay()
	if ms <= 0 {
		ms += timex.MillisPerDay
	}
	return timex.SpanOf(time.Duration(ms) * time.Millisecond)
}
