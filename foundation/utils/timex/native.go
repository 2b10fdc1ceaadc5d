// File: native.go
// Title: Native Database Time Structure
// Description: Go rendition of the MySQL client time struct (MYSQL_TIME) and
//              the conversions between it and TimeOfDay.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package timex

// TimestampType tags the variant held by a NativeTime
type TimestampType int

// Variants of NativeTime, numbered like the client library
const (
	TimestampNone     TimestampType = -2
	TimestampError    TimestampType = -1
	TimestampDate     TimestampType = 0
	TimestampDateTime TimestampType = 1
	TimestampTime     TimestampType = 2
)

// String returns the variant name
func (tt TimestampType) String() string {
	switch tt {
	case TimestampNone:
		return "NONE"
	case TimestampError:
		return "ERROR"
	case TimestampDate:
		return "DATE"
	case TimestampDateTime:
		return "DATETIME"
	case TimestampTime:
		return "TIME"
	default:
		return "UNKNOWN"
	}
}

// NativeTime mirrors the database client's time structure. SecondPart is in
// microseconds.
type NativeTime struct {
	Year       uint32        `cbor:"1,keyasint" json:"year"`
	Month      uint32        `cbor:"2,keyasint" json:"month"`
	Day        uint32        `cbor:"3,keyasint" json:"day"`
	Hour       uint32        `cbor:"4,keyasint" json:"hour"`
	Minute     uint32        `cbor:"5,keyasint" json:"minute"`
	Second     uint32        `cbor:"6,keyasint" json:"second"`
	SecondPart uint64        `cbor:"7,keyasint" json:"second_part"`
	Neg        bool          `cbor:"8,keyasint" json:"neg"`
	Type       TimestampType `cbor:"9,keyasint" json:"time_type"`
}

// FromNative converts n into a time of day. SecondPart is ignored, so the
// millisecond is always zero.
func FromNative(n NativeTime) (TimeOfDay, error) {
	return defaultValidator.FromNative(n)
}

// Native returns t as a time-only native structure. The date fields and
// SecondPart are zero and Neg is false.
func (t TimeOfDay) Native() NativeTime {
	return NativeTime{
		Hour:   uint32(t.hour),
		Minute: uint32(t.minute),
		Second: uint32(t.second),
		Type:   TimestampTime,
	}
}
