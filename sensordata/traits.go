// Package sensordata provides compact fixed-point value types for bounded
// physical sensor readings.
//
// A reading is stored as a small integer: the physical value divided by the
// sensor's resolution, rounded to nearest (ties away from zero). The scaled
// code is what travels over wires and into payload structs; the physical
// value is recovered on demand:
//
//	v := sensordata.NewTemperature(25.03) // stores 250 in an int16
//	c, ok := v.Value()                    // 25.0, true
//	raw, ok := v.RawScaledValue()         // 250, true
//
// The conversion contract lives in Traits: physical bounds, a positive
// resolution, and a unit, validated once at construction. Concrete kinds
// (Temperature, Humidity, ...) bind a ScaledValue to fixed traits at the
// type level, so the zero value of every kind is a ready-to-use "no reading
// yet" value.
package sensordata

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/KMX-Systems/kmx-sensor/unit"
)

// Storage covers the fixed-width integer types a scaled code may be stored
// in. int and uint are excluded so the storage width never depends on the
// platform.
type Storage interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Input covers the floating-point types physical readings arrive in.
type Input interface {
	constraints.Float
}

// Errors returned by NewTraits.
var (
	ErrResolution   = errors.New("sensordata: resolution must be positive")
	ErrBounds       = errors.New("sensordata: min value greater than max value")
	ErrStorageRange = errors.New("sensordata: scaled bounds exceed storage type")
)

// Traits describes one sensor configuration: the physical bounds, the
// resolution (smallest representable change) and the unit of measurement.
// The scaled encodings of the bounds and the clamp tolerance used by
// SetValue are precomputed here. A Traits value is immutable once built.
type Traits[S Storage, I Input] struct {
	min        I
	max        I
	resolution I
	unit       unit.Unit

	scaleFactor I // 1/resolution
	minScaled   S
	maxScaled   S

	// epsLimit is the tolerance SetValue uses when deciding whether clamping
	// materially changed an input: 100 machine epsilons of I.
	epsLimit I
}

// NewTraits validates and builds a sensor configuration. It fails when the
// resolution is not positive, when min exceeds max, or when the scaled
// encoding of either bound does not fit the storage type.
func NewTraits[S Storage, I Input](min, max, resolution I, u unit.Unit) (Traits[S, I], error) {
	var t Traits[S, I]
	if !(resolution > 0) { // also rejects NaN
		return t, ErrResolution
	}
	if min > max {
		return t, ErrBounds
	}
	t.min = min
	t.max = max
	t.resolution = resolution
	t.unit = u
	t.scaleFactor = 1 / resolution
	t.epsLimit = machineEpsilon[I]() * 100

	var ok bool
	if t.minScaled, ok = scaleChecked[S](min, t.scaleFactor); !ok {
		return Traits[S, I]{}, ErrStorageRange
	}
	if t.maxScaled, ok = scaleChecked[S](max, t.scaleFactor); !ok {
		return Traits[S, I]{}, ErrStorageRange
	}
	return t, nil
}

// MustTraits is NewTraits for package-level sensor definitions: a bad
// definition panics at initialisation instead of surfacing at first use.
func MustTraits[S Storage, I Input](min, max, resolution I, u unit.Unit) Traits[S, I] {
	t, err := NewTraits[S, I](min, max, resolution, u)
	if err != nil {
		panic(err)
	}
	return t
}

// Introspection.
func (t Traits[S, I]) Min() I          { return t.min }
func (t Traits[S, I]) Max() I          { return t.max }
func (t Traits[S, I]) Resolution() I   { return t.resolution }
func (t Traits[S, I]) Unit() unit.Unit { return t.unit }
func (t Traits[S, I]) MinScaled() S    { return t.minScaled }
func (t Traits[S, I]) MaxScaled() S    { return t.maxScaled }

// scale converts a physical value to its scaled code. The input must already
// be clamped to [min, max]; construction guarantees the result fits S.
func (t Traits[S, I]) scale(x I) S {
	return S(math.Round(float64(x * t.scaleFactor)))
}

// physical converts a scaled code back to the physical domain. The result is
// the quantized value, not the originally stored input.
func (t Traits[S, I]) physical(s S) I {
	return I(s) / t.scaleFactor
}

// scaleChecked quantizes x and reports whether the result is exactly
// representable in the storage type.
func scaleChecked[S Storage, I Input](x, scaleFactor I) (S, bool) {
	r := math.Round(float64(x * scaleFactor))
	s := S(r)
	if float64(s) != r {
		return 0, false
	}
	return s, true
}

// machineEpsilon probes the smallest e of the float type with 1+e != 1.
func machineEpsilon[I Input]() I {
	e := I(1)
	for I(1)+e/2 != I(1) {
		e /= 2
	}
	return e
}
