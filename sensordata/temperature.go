package sensordata

import "github.com/KMX-Systems/kmx-sensor/unit"

// TemperatureKind fixes the traits of a temperature reading: -50.0 °C to
// +50.0 °C at 0.1 °C resolution, stored as tenths of °C in an int16
// (e.g. 250 => 25.0 °C).
type TemperatureKind struct{}

// Traits implements Kind.
func (TemperatureKind) Traits() Traits[int16, float32] { return temperatureTraits }

var temperatureTraits = MustTraits[int16, float32](-50, 50, 0.1, unit.Celsius)

// Temperature is a temperature reading. The zero value is undefined.
type Temperature = ScaledValue[int16, float32, TemperatureKind]

// NewTemperature returns a defined reading, clamped and quantized.
func NewTemperature(celsius float32) Temperature {
	return New[int16, float32, TemperatureKind](celsius)
}
