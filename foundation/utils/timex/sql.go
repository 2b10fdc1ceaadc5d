// File: sql.go
// Title: database/sql Support
// Description: Valuer and Scanner implementations so TimeOfDay can be bound
//              to TIME and TEXT columns, plus a nullable wrapper.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

import (
	"database/sql/driver"
	"fmt"
	"time"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
)

// Value implements driver.Valuer. The value is stored in its text form.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner for string, []byte and time.Time sources
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case time.Time:
		*t = FromTime(v)
		return nil
	case nil:
		return mdwerror.New("cannot scan NULL into TimeOfDay").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.Scan")
	default:
		return mdwerror.New(fmt.Sprintf("cannot scan %T into TimeOfDay", src)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.Scan")
	}
}

// NullTimeOfDay is a TimeOfDay that may be NULL
type NullTimeOfDay struct {
	Time  TimeOfDay
	Valid bool
}

// Scan implements sql.Scanner
func (n *NullTimeOfDay) Scan(src interface{}) error {
	if src == nil {
		n.Time, n.Valid = TimeOfDay{}, false
		return nil
	}
	if err := n.Time.Scan(src); err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer
func (n NullTimeOfDay) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Time.Value()
}
