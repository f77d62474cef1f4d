package sensordata

import (
	"fmt"

	"github.com/KMX-Systems/kmx-sensor/unit"
	"github.com/KMX-Systems/kmx-sensor/x/mathx"
)

// Kind binds a sensor definition to its Traits at the type level: the
// configuration travels with the ScaledValue type rather than with its
// instances, so a freshly declared value needs no setup before use.
// Implementations are zero-size marker types.
type Kind[S Storage, I Input] interface {
	Traits() Traits[S, I]
}

// ScaledValue holds an optional sensor reading in scaled integer form.
//
// The zero value is undefined (no reading stored yet). SetValue and
// SetRawScaledValue make it defined; Clear returns it to undefined.
// ScaledValue is a plain value type; copy it freely. It is not safe for
// concurrent mutation.
type ScaledValue[S Storage, I Input, K Kind[S, I]] struct {
	scaled  S
	defined bool
}

// New returns a value defined from the physical reading x, clamped to the
// sensor's range and quantized to its resolution.
func New[S Storage, I Input, K Kind[S, I]](x I) ScaledValue[S, I, K] {
	var v ScaledValue[S, I, K]
	v.SetValue(x)
	return v
}

func (ScaledValue[S, I, K]) traits() Traits[S, I] {
	var k K
	return k.Traits()
}

// IsDefined reports whether a reading is stored.
func (v ScaledValue[S, I, K]) IsDefined() bool { return v.defined }

// Value returns the stored reading converted back to the physical domain.
// The result is the quantized value, not the original input. ok is false
// when no reading is stored.
func (v ScaledValue[S, I, K]) Value() (x I, ok bool) {
	if !v.defined {
		return 0, false
	}
	return v.traits().physical(v.scaled), true
}

// SetValue stores x, clamped to [MinValue, MaxValue] and quantized to the
// resolution. The value always becomes defined. The return reports whether
// x was within range: false means clamping moved the input by at least the
// tolerance (100 machine epsilons of I). NaN counts as out of range and is
// stored as the minimum.
func (v *ScaledValue[S, I, K]) SetValue(x I) bool {
	t := v.traits()
	if x != x { // NaN
		v.scaled = t.minScaled
		v.defined = true
		return false
	}
	clamped := mathx.Clamp(x, t.min, t.max)
	v.scaled = t.scale(clamped)
	v.defined = true
	return mathx.Abs(x-clamped) < t.epsLimit
}

// RawScaledValue returns the stored scaled code, the form meant for
// transmission and persistence. ok is false when no reading is stored.
func (v ScaledValue[S, I, K]) RawScaledValue() (raw S, ok bool) {
	if !v.defined {
		return 0, false
	}
	return v.scaled, true
}

// SetRawScaledValue stores a received scaled code after validating it
// against the scaled bounds. An out-of-range code is rejected and the
// previous state, defined or not, is left untouched.
func (v *ScaledValue[S, I, K]) SetRawScaledValue(raw S) bool {
	t := v.traits()
	if !mathx.Between(raw, t.minScaled, t.maxScaled) {
		return false
	}
	v.scaled = raw
	v.defined = true
	return true
}

// Clear discards any stored reading, returning the value to undefined.
func (v *ScaledValue[S, I, K]) Clear() {
	v.scaled = 0
	v.defined = false
}

// Static metadata. Functions of the sensor kind alone; valid on the zero
// value.

// MinValue returns the lower physical bound.
func (v ScaledValue[S, I, K]) MinValue() I { return v.traits().min }

// MaxValue returns the upper physical bound.
func (v ScaledValue[S, I, K]) MaxValue() I { return v.traits().max }

// Resolution returns the smallest representable change of the physical
// value.
func (v ScaledValue[S, I, K]) Resolution() I { return v.traits().resolution }

// Unit returns the unit of measurement.
func (v ScaledValue[S, I, K]) Unit() unit.Unit { return v.traits().unit }

// UnitText returns the display symbol of the unit.
func (v ScaledValue[S, I, K]) UnitText() string { return v.traits().unit.Text() }

// MinScaledStorageValue returns the scaled code of the lower bound.
func (v ScaledValue[S, I, K]) MinScaledStorageValue() S { return v.traits().minScaled }

// MaxScaledStorageValue returns the scaled code of the upper bound.
func (v ScaledValue[S, I, K]) MaxScaledStorageValue() S { return v.traits().maxScaled }

// String renders the physical value with its unit symbol, or "undefined".
func (v ScaledValue[S, I, K]) String() string {
	x, ok := v.Value()
	if !ok {
		return "undefined"
	}
	return fmt.Sprintf("%v %s", x, v.UnitText())
}
