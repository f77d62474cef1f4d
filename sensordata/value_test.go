package sensordata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureStoreAndReadBack(t *testing.T) {
	v := NewTemperature(25.03)

	require.True(t, v.IsDefined())
	raw, ok := v.RawScaledValue()
	require.True(t, ok)
	assert.Equal(t, int16(250), raw)

	got, ok := v.Value()
	require.True(t, ok)
	assert.InDelta(t, 25.0, float64(got), 1e-4)
}

func TestSetValueClamps(t *testing.T) {
	var v Temperature

	assert.False(t, v.SetValue(55))
	got, _ := v.Value()
	assert.InDelta(t, 50.0, float64(got), 1e-6)

	assert.False(t, v.SetValue(-55))
	got, _ = v.Value()
	assert.InDelta(t, -50.0, float64(got), 1e-6)
}

func TestSetValueBoundsAreInRange(t *testing.T) {
	var v Temperature
	assert.True(t, v.SetValue(50))
	assert.True(t, v.SetValue(-50))
}

func TestSetValueClampTolerance(t *testing.T) {
	var v Temperature

	// One ulp below the minimum: clamped, but the change is far below the
	// tolerance, so the input still counts as in range.
	just := math.Nextafter32(-50, -100)
	assert.True(t, v.SetValue(just))
	raw, _ := v.RawScaledValue()
	assert.Equal(t, int16(-500), raw)

	// A hundredth of a degree outside is a real violation.
	assert.False(t, v.SetValue(-50.01))
	raw, _ = v.RawScaledValue()
	assert.Equal(t, int16(-500), raw)
}

func TestSetValueNaN(t *testing.T) {
	var v Temperature

	assert.False(t, v.SetValue(nan32()))
	require.True(t, v.IsDefined())
	got, _ := v.Value()
	assert.InDelta(t, -50.0, float64(got), 1e-6)
}

func TestSetValueInfinity(t *testing.T) {
	var v Temperature

	assert.False(t, v.SetValue(float32(math.Inf(1))))
	got, _ := v.Value()
	assert.InDelta(t, 50.0, float64(got), 1e-6)

	assert.False(t, v.SetValue(float32(math.Inf(-1))))
	got, _ = v.Value()
	assert.InDelta(t, -50.0, float64(got), 1e-6)
}

func TestSetRawScaledValueAccepts(t *testing.T) {
	var v Temperature

	require.True(t, v.SetRawScaledValue(-500))
	got, ok := v.Value()
	require.True(t, ok)
	assert.InDelta(t, -50.0, float64(got), 1e-6)

	require.True(t, v.SetRawScaledValue(500))
	require.True(t, v.SetRawScaledValue(0))
	got, _ = v.Value()
	assert.InDelta(t, 0.0, float64(got), 1e-6)
}

func TestSetRawScaledValueRejects(t *testing.T) {
	v := NewTemperature(25.03)

	assert.False(t, v.SetRawScaledValue(501))
	assert.False(t, v.SetRawScaledValue(-501))

	// Rejection leaves the previous reading untouched.
	raw, ok := v.RawScaledValue()
	require.True(t, ok)
	assert.Equal(t, int16(250), raw)

	// On an undefined value it stays undefined.
	var u Humidity
	assert.False(t, u.SetRawScaledValue(201))
	assert.False(t, u.IsDefined())
}

func TestZeroValueUndefined(t *testing.T) {
	var h Humidity

	assert.False(t, h.IsDefined())
	_, ok := h.Value()
	assert.False(t, ok)
	_, ok = h.RawScaledValue()
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	h := NewHumidity(33.3)

	raw, ok := h.RawScaledValue()
	require.True(t, ok)
	assert.Equal(t, uint8(67), raw)
	got, _ := h.Value()
	assert.InDelta(t, 33.5, float64(got), 1e-4)

	h.Clear()
	assert.False(t, h.IsDefined())
	_, ok = h.Value()
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "23.1 °C", NewTemperature(23.1).String())
	assert.Equal(t, "50 %", NewHumidity(50).String())

	var v Voltage
	assert.Equal(t, "undefined", v.String())
}

// sweepQuantization checks that every stored reading stays within half a
// resolution step of its input across the whole physical range.
func sweepQuantization[S Storage, I Input, K Kind[S, I]](t *testing.T) {
	t.Helper()
	var v ScaledValue[S, I, K]
	min, max, res := v.MinValue(), v.MaxValue(), v.Resolution()

	const steps = 997
	for i := 0; i <= steps; i++ {
		x := min + (max-min)*I(i)/steps
		if x < min {
			x = min
		}
		if x > max {
			x = max
		}
		require.True(t, v.SetValue(x), "x=%v", x)
		got, ok := v.Value()
		require.True(t, ok)
		require.InDelta(t, float64(x), float64(got), float64(res)*0.51, "x=%v", x)
	}
}

func TestQuantizationWithinHalfResolution(t *testing.T) {
	t.Run("temperature", sweepQuantization[int16, float32, TemperatureKind])
	t.Run("humidity", sweepQuantization[uint8, float32, HumidityKind])
	t.Run("light", sweepQuantization[uint16, float32, LightIntensityKind])
	t.Run("pressure", sweepQuantization[uint16, float32, PressureKind])
	t.Run("voltage", sweepQuantization[uint16, float32, VoltageKind])
	t.Run("current", sweepQuantization[int16, float32, CurrentKind])
	t.Run("wind", sweepQuantization[uint16, float32, WindSpeedKind])
}

// sweepGridStable checks that converting a stored code to the physical
// domain and back reproduces the code for every point of the grid.
func sweepGridStable[S Storage, I Input, K Kind[S, I]](t *testing.T) {
	t.Helper()
	var v ScaledValue[S, I, K]
	lo, hi := v.MinScaledStorageValue(), v.MaxScaledStorageValue()

	for raw := lo; ; raw++ {
		require.True(t, v.SetRawScaledValue(raw), "raw=%v", raw)
		x, ok := v.Value()
		require.True(t, ok)
		require.True(t, v.SetValue(x), "raw=%v x=%v", raw, x)
		got, _ := v.RawScaledValue()
		require.Equal(t, raw, got, "x=%v", x)
		if raw == hi {
			break
		}
	}
}

func TestGridRoundTripStable(t *testing.T) {
	t.Run("temperature", sweepGridStable[int16, float32, TemperatureKind])
	t.Run("humidity", sweepGridStable[uint8, float32, HumidityKind])
	t.Run("light", sweepGridStable[uint16, float32, LightIntensityKind])
	t.Run("pressure", sweepGridStable[uint16, float32, PressureKind])
	t.Run("voltage", sweepGridStable[uint16, float32, VoltageKind])
	t.Run("current", sweepGridStable[int16, float32, CurrentKind])
	t.Run("wind", sweepGridStable[uint16, float32, WindSpeedKind])
}

func TestPressureHalfStepRoundsAway(t *testing.T) {
	// 101325 Pa sits exactly between 10132 and 10133 on the 10 Pa grid.
	v := NewPressure(101325)
	raw, ok := v.RawScaledValue()
	require.True(t, ok)
	assert.Equal(t, uint16(10133), raw)
	got, _ := v.Value()
	assert.InDelta(t, 101330.0, float64(got), 1e-3)
}

func TestCopySemantics(t *testing.T) {
	a := NewTemperature(10)
	b := a
	b.SetValue(20)

	got, _ := a.Value()
	assert.InDelta(t, 10.0, float64(got), 1e-6)
	got, _ = b.Value()
	assert.InDelta(t, 20.0, float64(got), 1e-6)
}
