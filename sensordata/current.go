package sensordata

import "github.com/KMX-Systems/kmx-sensor/unit"

// CurrentKind fixes the traits of a current reading: -50 A to +50 A at
// 10 mA resolution, stored as centiamperes in an int16 (e.g. -150 =>
// -1.50 A). Negative readings are discharge, positive charge.
type CurrentKind struct{}

// Traits implements Kind.
func (CurrentKind) Traits() Traits[int16, float32] { return currentTraits }

var currentTraits = MustTraits[int16, float32](-50, 50, 0.01, unit.Ampere)

// Current is a current reading. The zero value is undefined.
type Current = ScaledValue[int16, float32, CurrentKind]

// NewCurrent returns a defined reading, clamped and quantized.
func NewCurrent(ampere float32) Current {
	return New[int16, float32, CurrentKind](ampere)
}
