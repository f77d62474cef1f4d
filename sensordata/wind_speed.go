package sensordata

import "github.com/KMX-Systems/kmx-sensor/unit"

// WindSpeedKind fixes the traits of a wind-speed reading: 0 m/s to 60 m/s
// at 0.1 m/s resolution, stored as deci-metres per second in a uint16
// (e.g. 53 => 5.3 m/s). 60 m/s sits above the strongest recorded gusts
// ordinary anemometers survive.
type WindSpeedKind struct{}

// Traits implements Kind.
func (WindSpeedKind) Traits() Traits[uint16, float32] { return windSpeedTraits }

var windSpeedTraits = MustTraits[uint16, float32](0, 60, 0.1, unit.MeterPerSecond)

// WindSpeed is a wind-speed reading. The zero value is undefined.
type WindSpeed = ScaledValue[uint16, float32, WindSpeedKind]

// NewWindSpeed returns a defined reading, clamped and quantized.
func NewWindSpeed(metersPerSecond float32) WindSpeed {
	return New[uint16, float32, WindSpeedKind](metersPerSecond)
}
