package sensordata

import "github.com/KMX-Systems/kmx-sensor/unit"

// LightIntensityKind fixes the traits of an illuminance reading: 0 lx to
// 65535 lx at 1 lx resolution, stored one-to-one in a uint16.
type LightIntensityKind struct{}

// Traits implements Kind.
func (LightIntensityKind) Traits() Traits[uint16, float32] { return lightIntensityTraits }

var lightIntensityTraits = MustTraits[uint16, float32](0, 65535, 1, unit.Lux)

// LightIntensity is an illuminance reading. The zero value is undefined.
type LightIntensity = ScaledValue[uint16, float32, LightIntensityKind]

// NewLightIntensity returns a defined reading, clamped and quantized.
func NewLightIntensity(lux float32) LightIntensity {
	return New[uint16, float32, LightIntensityKind](lux)
}
