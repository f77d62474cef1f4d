package sensordata

import "github.com/KMX-Systems/kmx-sensor/unit"

// PressureKind fixes the traits of a barometric-pressure reading: 30000 Pa
// to 110000 Pa (the 300..1100 hPa span of common barometric sensors) at
// 10 Pa resolution, stored as decapascals in a uint16 (e.g. 10132 =>
// 101320 Pa).
type PressureKind struct{}

// Traits implements Kind.
func (PressureKind) Traits() Traits[uint16, float32] { return pressureTraits }

var pressureTraits = MustTraits[uint16, float32](30000, 110000, 10, unit.Pascal)

// Pressure is a barometric-pressure reading. The zero value is undefined.
type Pressure = ScaledValue[uint16, float32, PressureKind]

// NewPressure returns a defined reading, clamped and quantized.
func NewPressure(pascal float32) Pressure {
	return New[uint16, float32, PressureKind](pascal)
}
