// File: cbor.go
// Title: CBOR Encoding
// Description: Compact CBOR forms for TimeOfDay (a four element array) and
//              NativeTime (an integer keyed map).
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

	"github.com/fxamacker/cbor/v2"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create timex CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create timex CBOR decoder mode: %v", err))
	}
}

// wireTime is the array form [hour, minute, second, millisecond]
type wireTime struct {
	_           struct{} `cbor:",toarray"`
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// MarshalCBOR implements cbor.Marshaler
func (t TimeOfDay) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(wireTime{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Millisecond(),
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler. Decoded fields are validated.
func (t *TimeOfDay) UnmarshalCBOR(data []byte) error {
	var w wireTime
	if err := decMode.Unmarshal(data, &w); err != nil {
		return mdwerror.Wrap(err, "decode time").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex.UnmarshalCBOR")
	}
	return t.set("timex.UnmarshalCBOR", w.Hour, w.Minute, w.Second, w.Millisecond)
}

// EncodeNative encodes n with integer keys
func EncodeNative(n NativeTime) ([]byte, error) {
	return encMode.Marshal(n)
}

// DecodeNative decodes a NativeTime produced by EncodeNative
func DecodeNative(data []byte) (NativeTime, error) {
	var n NativeTime
	if err := decMode.Unmarshal(data, &n); err != nil {
		return NativeTime{}, mdwerror.Wrap(err, "decode native time").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("timex.DecodeNative")
	}
	return n, nil
}
