package sensordata

import "github.com/KMX-Systems/kmx-sensor/unit"

// HumidityKind fixes the traits of a relative-humidity reading: 0.0 %RH to
// 100.0 %RH at 0.5 %RH resolution, stored as half-percent steps in a uint8
// (e.g. 67 => 33.5 %RH).
type HumidityKind struct{}

// Traits implements Kind.
func (HumidityKind) Traits() Traits[uint8, float32] { return humidityTraits }

var humidityTraits = MustTraits[uint8, float32](0, 100, 0.5, unit.Percent)

// Humidity is a relative-humidity reading. The zero value is undefined.
type Humidity = ScaledValue[uint8, float32, HumidityKind]

// NewHumidity returns a defined reading, clamped and quantized.
func NewHumidity(percent float32) Humidity {
	return New[uint8, float32, HumidityKind](percent)
}
