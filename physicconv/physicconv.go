// Package physicconv bridges sensor readings to the fixed-point quantities
// of periph.io/x/conn/v3/physic, for pretty-printing and for handing
// readings to physic-based consumers.
//
// From* functions report ok=false for an undefined reading. To* functions
// clamp and quantize like the sensor setters do. LightIntensity has no
// bridge: physic models luminous flux and intensity, not illuminance.
package physicconv

import (
	"math"

	"periph.io/x/conn/v3/physic"

	"github.com/KMX-Systems/kmx-sensor/sensordata"
)

// FromTemperature converts a reading to a physic temperature.
func FromTemperature(v sensordata.Temperature) (physic.Temperature, bool) {
	c, ok := v.Value()
	if !ok {
		return 0, false
	}
	return physic.ZeroCelsius + physic.Temperature(math.Round(float64(c)*float64(physic.Kelvin))), true
}

// ToTemperature stores a physic temperature as a reading.
func ToTemperature(k physic.Temperature) sensordata.Temperature {
	c := float64(k-physic.ZeroCelsius) / float64(physic.Kelvin)
	return sensordata.NewTemperature(float32(c))
}

// FromHumidity converts a reading to a physic relative humidity.
func FromHumidity(v sensordata.Humidity) (physic.RelativeHumidity, bool) {
	p, ok := v.Value()
	if !ok {
		return 0, false
	}
	return physic.RelativeHumidity(math.Round(float64(p) * float64(physic.PercentRH))), true
}

// ToHumidity stores a physic relative humidity as a reading.
func ToHumidity(rh physic.RelativeHumidity) sensordata.Humidity {
	p := float64(rh) / float64(physic.PercentRH)
	return sensordata.NewHumidity(float32(p))
}

// FromPressure converts a reading to a physic pressure.
func FromPressure(v sensordata.Pressure) (physic.Pressure, bool) {
	pa, ok := v.Value()
	if !ok {
		return 0, false
	}
	return physic.Pressure(math.Round(float64(pa) * float64(physic.Pascal))), true
}

// ToPressure stores a physic pressure as a reading.
func ToPressure(p physic.Pressure) sensordata.Pressure {
	pa := float64(p) / float64(physic.Pascal)
	return sensordata.NewPressure(float32(pa))
}

// FromVoltage converts a reading to a physic electric potential.
func FromVoltage(v sensordata.Voltage) (physic.ElectricPotential, bool) {
	volts, ok := v.Value()
	if !ok {
		return 0, false
	}
	return physic.ElectricPotential(math.Round(float64(volts) * float64(physic.Volt))), true
}

// ToVoltage stores a physic electric potential as a reading.
func ToVoltage(ep physic.ElectricPotential) sensordata.Voltage {
	volts := float64(ep) / float64(physic.Volt)
	return sensordata.NewVoltage(float32(volts))
}

// FromCurrent converts a reading to a physic electric current.
func FromCurrent(v sensordata.Current) (physic.ElectricCurrent, bool) {
	amps, ok := v.Value()
	if !ok {
		return 0, false
	}
	return physic.ElectricCurrent(math.Round(float64(amps) * float64(physic.Ampere))), true
}

// ToCurrent stores a physic electric current as a reading.
func ToCurrent(ec physic.ElectricCurrent) sensordata.Current {
	amps := float64(ec) / float64(physic.Ampere)
	return sensordata.NewCurrent(float32(amps))
}

// FromWindSpeed converts a reading to a physic speed.
func FromWindSpeed(v sensordata.WindSpeed) (physic.Speed, bool) {
	ms, ok := v.Value()
	if !ok {
		return 0, false
	}
	return physic.Speed(math.Round(float64(ms) * float64(physic.MetrePerSecond))), true
}

// ToWindSpeed stores a physic speed as a reading.
func ToWindSpeed(s physic.Speed) sensordata.WindSpeed {
	ms := float64(s) / float64(physic.MetrePerSecond)
	return sensordata.NewWindSpeed(float32(ms))
}
