// File: text.go
// Title: Time-of-Day Text Form
// Description: Positional parsing of HH[:MM[:SS[.fff]]] strings, formatting
//              and the text, JSON and YAML encodings built on them.
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
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
)

// Parse reads a time of day from s.
//
// The layout is positional: characters [0,2) hold the hour, [3,5) the minute
// and everything from index 6 on the seconds, optionally with a fraction.
// Missing trailing parts default to zero, so "12" and "12:30" are accepted.
// Separator characters are not checked.
//
// Parse returns an INVALID_FORMAT error when s is shorter than two characters
// or a part is not numeric, and an INVALID_TIME error when the parsed fields
// are out of range.
func Parse(s string) (TimeOfDay, error) {
	return defaultValidator.Parse(s)
}

// MustParse is like Parse but panics on error
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// SetString parses s into t. It returns false without an error when s is
// too short or malformed, and false with an INVALID_TIME error when the
// parsed fields are out of range. t is only changed on success.
func (t *TimeOfDay) SetString(s string) (bool, error) {
	return defaultValidator.SetString(t, s)
}

func parseComponents(op, s string) (Components, error) {
	var c Components

	if len(s) < 2 {
		return c, newMalformedError(op, s, "too short")
	}

	hour, err := strconv.Atoi(s[0:2])
	if err != nil {
		return c, newMalformedError(op, s, "hour is not numeric")
	}
	c.Hour = hour

	if len(s) >= 3 {
		part := s[3:min(5, len(s))]
		if part != "" {
			minute, err := strconv.Atoi(part)
			if err != nil {
				return c, newMalformedError(op, s, "minute is not numeric")
			}
			c.Minute = minute
		}
	}

	if len(s) >= 6 {
		part := s[6:]
		if part != "" {
			seconds, err := strconv.ParseFloat(part, 64)
			if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || math.Abs(seconds) >= 1<<31 {
				return c, newMalformedError(op, s, "second is not numeric")
			}
			whole := math.Trunc(seconds)
			c.Second = int(whole)
			c.Millisecond = fractionMillis(part, seconds-whole)
		}
	}

	return c, nil
}

// fractionMillis truncates the fractional seconds of part to milliseconds.
// Plain decimals are read from their first three fraction digits; other
// float forms fall back to frac and are capped below a full second.
func fractionMillis(part string, frac float64) int {
	if dot := strings.IndexByte(part, '.'); dot >= 0 && !strings.HasPrefix(part, "-") {
		digits := part[dot+1:]
		if digits != "" && strings.Trim(digits, "0123456789") == "" {
			digits = (digits + "00")[:3]
			ms, _ := strconv.Atoi(digits)
			return ms
		}
	}
	return min(int(math.Floor(frac*MillisPerSecond)), MillisPerSecond-1)
}

// Format renders t as HH:MM:SS. With withMillis set a non-zero millisecond
// is appended as .mmm; a zero millisecond is always omitted.
func (t TimeOfDay) Format(withMillis bool) string {
	if withMillis && t.millisecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.hour, t.minute, t.second, t.millisecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// String implements fmt.Stringer
func (t TimeOfDay) String() string {
	return t.Format(true)
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (t TimeOfDay) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML accepts either the text form or a mapping with hour, minute,
// second and millisecond keys.
func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return t.UnmarshalText([]byte(node.Value))
	case yaml.MappingNode:
		var c Components
		if err := node.Decode(&c); err != nil {
			return mdwerror.Wrap(err, "decode time mapping").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("timex.UnmarshalYAML")
		}
		parsed, err := New(c.Hour, c.Minute, c.Second, c.Millisecond)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return mdwerror.New(fmt.Sprintf("cannot decode time from YAML node at line %d", node.Line)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex.UnmarshalYAML")
	}
}

// UnmarshalTOML accepts a quoted string or a TOML local time such as
// 07:15:00.250.
func (t *TimeOfDay) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case time.Time:
		parsed, err := New(v.Hour(), v.Minute(), v.Second(), v.Nanosecond()/int(time.Millisecond))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return mdwerror.New(fmt.Sprintf("cannot decode time from TOML value of type %T", data)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex.UnmarshalTOML")
	}
}
