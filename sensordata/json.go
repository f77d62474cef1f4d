package sensordata

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrRawRange reports a decoded scaled code outside the sensor's bounds.
var ErrRawRange = errors.New("sensordata: raw scaled value out of range")

var jsonNull = []byte("null")

// MarshalJSON encodes the raw scaled code, or null when undefined. The
// compact code is the wire form; consumers wanting the physical value
// decode and call Value.
func (v ScaledValue[S, I, K]) MarshalJSON() ([]byte, error) {
	raw, ok := v.RawScaledValue()
	if !ok {
		return jsonNull, nil
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts null (undefined) or a scaled code, validated like
// SetRawScaledValue: an out-of-range code yields ErrRawRange and the
// previous state is preserved.
func (v *ScaledValue[S, I, K]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		v.Clear()
		return nil
	}
	var raw S
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if !v.SetRawScaledValue(raw) {
		return ErrRawRange
	}
	return nil
}
