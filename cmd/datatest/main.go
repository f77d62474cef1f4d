// cmd/datatest/main.go
//
// Host-side walkthrough of the sensor value types. Runs every check, prints
// [PASS]/[FAIL] per check and exits non-zero on any failure. Useful as a
// quick smoke test without the full test suite.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/KMX-Systems/kmx-sensor/physicconv"
	"github.com/KMX-Systems/kmx-sensor/sensordata"
	"github.com/KMX-Systems/kmx-sensor/unit"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < 1e-4
}

func checkMetadata() bool {
	var v sensordata.Temperature
	if v.IsDefined() {
		fmt.Println("checkMetadata: zero value claims a reading")
		return false
	}
	if v.MinValue() != -50 || v.MaxValue() != 50 || !approx(v.Resolution(), 0.1) {
		fmt.Println("checkMetadata: wrong physical bounds")
		return false
	}
	if v.Unit() != unit.Celsius || v.UnitText() != "°C" {
		fmt.Println("checkMetadata: wrong unit")
		return false
	}
	if v.MinScaledStorageValue() != -500 || v.MaxScaledStorageValue() != 500 {
		fmt.Println("checkMetadata: wrong scaled bounds")
		return false
	}
	return true
}

func checkStoreAndReadBack() bool {
	v := sensordata.NewTemperature(25.03)
	raw, ok := v.RawScaledValue()
	if !ok || raw != 250 {
		fmt.Printf("checkStoreAndReadBack: raw = %d (ok=%v), want 250\n", raw, ok)
		return false
	}
	x, ok := v.Value()
	if !ok || !approx(x, 25.0) {
		fmt.Printf("checkStoreAndReadBack: value = %v, want 25.0\n", x)
		return false
	}
	fmt.Printf("  stored %v as %d, reads back %v\n", 25.03, raw, v)
	return true
}

func checkClamping() bool {
	var v sensordata.Temperature
	if v.SetValue(55) {
		fmt.Println("checkClamping: 55 reported in range")
		return false
	}
	if x, _ := v.Value(); !approx(x, 50) {
		fmt.Printf("checkClamping: value = %v, want 50\n", x)
		return false
	}
	return true
}

func checkRawValidation() bool {
	v := sensordata.NewTemperature(25.03)
	if v.SetRawScaledValue(501) {
		fmt.Println("checkRawValidation: 501 accepted")
		return false
	}
	if raw, _ := v.RawScaledValue(); raw != 250 {
		fmt.Printf("checkRawValidation: state changed to %d\n", raw)
		return false
	}
	if !v.SetRawScaledValue(-500) {
		fmt.Println("checkRawValidation: -500 rejected")
		return false
	}
	if x, _ := v.Value(); !approx(x, -50) {
		fmt.Printf("checkRawValidation: value = %v, want -50\n", x)
		return false
	}
	return true
}

func checkClear() bool {
	h := sensordata.NewHumidity(33.3)
	if raw, _ := h.RawScaledValue(); raw != 67 {
		fmt.Printf("checkClear: raw = %d, want 67\n", raw)
		return false
	}
	h.Clear()
	if h.IsDefined() {
		fmt.Println("checkClear: still defined after Clear")
		return false
	}
	return true
}

func checkJSONPayload() bool {
	type payload struct {
		Temp  sensordata.Temperature    `json:"temp"`
		Hum   sensordata.Humidity       `json:"hum"`
		Light sensordata.LightIntensity `json:"light"`
	}
	in := payload{
		Temp: sensordata.NewTemperature(25.03),
		Hum:  sensordata.NewHumidity(33.3),
	}
	b, err := json.Marshal(in)
	if err != nil {
		fmt.Printf("checkJSONPayload: marshal: %v\n", err)
		return false
	}
	want := `{"temp":250,"hum":67,"light":null}`
	if string(b) != want {
		fmt.Printf("checkJSONPayload: %s, want %s\n", b, want)
		return false
	}
	var out payload
	if err := json.Unmarshal(b, &out); err != nil {
		fmt.Printf("checkJSONPayload: unmarshal: %v\n", err)
		return false
	}
	if out != in {
		fmt.Println("checkJSONPayload: round trip mismatch")
		return false
	}
	fmt.Printf("  payload: %s\n", b)
	return true
}

func checkPhysicBridge() bool {
	q, ok := physicconv.FromTemperature(sensordata.NewTemperature(25))
	if !ok {
		fmt.Println("checkPhysicBridge: undefined")
		return false
	}
	fmt.Printf("  25 °C as physic: %v\n", q)
	back := physicconv.ToTemperature(q)
	raw, _ := back.RawScaledValue()
	if raw != 250 {
		fmt.Printf("checkPhysicBridge: round trip raw = %d, want 250\n", raw)
		return false
	}
	return true
}

type testFn struct {
	name string
	fn   func() bool
}

func main() {
	tests := []testFn{
		{"checkMetadata", checkMetadata},
		{"checkStoreAndReadBack", checkStoreAndReadBack},
		{"checkClamping", checkClamping},
		{"checkRawValidation", checkRawValidation},
		{"checkClear", checkClear},
		{"checkJSONPayload", checkJSONPayload},
		{"checkPhysicBridge", checkPhysicBridge},
	}

	passed, failed := 0, 0
	fmt.Println("== sensor data self-test starting ==")
	for _, tc := range tests {
		if tc.fn() {
			fmt.Printf("[PASS] %s\n", tc.name)
			passed++
		} else {
			fmt.Printf("[FAIL] %s\n", tc.name)
			failed++
		}
	}
	fmt.Printf("== done: %d passed, %d failed ==\n", passed, failed)
	if failed != 0 {
		os.Exit(1)
	}
}
