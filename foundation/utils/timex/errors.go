// File: errors.go
// Title: Time-of-Day Validation Errors
// Description: Builds the coded errors returned for rejected time values and
//              extracts the attempted field values from them.
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

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
)

// Components holds the four fields of a time of day as plain integers. It is
// used for error payloads and for the YAML mapping form.
type Components struct {
	Hour        int `yaml:"hour" json:"hour"`
	Minute      int `yaml:"minute" json:"minute"`
	Second      int `yaml:"second" json:"second"`
	Millisecond int `yaml:"millisecond" json:"millisecond"`
}

func newInvalidTimeError(op string, hour, minute, second, millisecond int) *mdwerror.Error {
	msg := fmt.Sprintf("invalid time: hour - %d, minute - %d, second - %d, millisecond - %d",
		hour, minute, second, millisecond)

	return mdwerror.New(msg).
		WithCode(mdwerror.CodeInvalidTime).
		WithOperation(op).
		WithDetails(map[string]interface{}{
			"hour":        hour,
			"minute":      minute,
			"second":      second,
			"millisecond": millisecond,
		})
}

func newMalformedError(op, input, reason string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("malformed time %q: %s", input, reason)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(op).
		WithDetail("input", input)
}

// InvalidComponents returns the attempted field values carried by an
// INVALID_TIME error anywhere in err's chain.
func InvalidComponents(err error) (Components, bool) {
	mdwErr, ok := mdwerror.As(err)
	if !ok || mdwErr.Code() != mdwerror.CodeInvalidTime {
		return Components{}, false
	}

	var c Components
	for key, dst := range map[string]*int{
		"hour":        &c.Hour,
		"minute":      &c.Minute,
		"second":      &c.Second,
		"millisecond": &c.Millisecond,
	} {
		v, found := mdwErr.Detail(key)
		if !found {
			return Components{}, false
		}
		n, isInt := v.(int)
		if !isInt {
			return Components{}, false
		}
		*dst = n
	}
	return c, true
}

// IsInvalidTime reports whether err is a time validation failure
func IsInvalidTime(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidTime)
}

// IsMalformed reports whether err is a time parse failure
func IsMalformed(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidFormat)
}
