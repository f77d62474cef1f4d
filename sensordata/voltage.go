package sensordata

import "github.com/KMX-Systems/kmx-sensor/unit"

// VoltageKind fixes the traits of a voltage reading: 0 V to 30 V at 10 mV
// resolution, stored as centivolts in a uint16 (e.g. 1250 => 12.50 V).
// The range covers single cells through 24 V battery banks.
type VoltageKind struct{}

// Traits implements Kind.
func (VoltageKind) Traits() Traits[uint16, float32] { return voltageTraits }

var voltageTraits = MustTraits[uint16, float32](0, 30, 0.01, unit.Volt)

// Voltage is a voltage reading. The zero value is undefined.
type Voltage = ScaledValue[uint16, float32, VoltageKind]

// NewVoltage returns a defined reading, clamped and quantized.
func NewVoltage(volt float32) Voltage {
	return New[uint16, float32, VoltageKind](volt)
}
