package mathx

import "testing"

func TestClamp(t *testing.T) {
	type C struct {
		v, lo, hi, want float64
	}
	for _, c := range []C{
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{7, 0, 10, 7},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{3, 10, 0, 3}, // swapped bounds
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp(int16(-600), int16(-500), int16(500)); got != -500 {
		t.Fatalf("Clamp(int16 -600) = %d, want -500", got)
	}
}

func TestBetween(t *testing.T) {
	type C struct {
		v, lo, hi int16
		want      bool
	}
	for _, c := range []C{
		{0, -500, 500, true},
		{-500, -500, 500, true},
		{500, -500, 500, true},
		{501, -500, 500, false},
		{-501, -500, 500, false},
		{3, 10, 0, true}, // swapped bounds
	} {
		if got := Between(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Between(%d, %d, %d) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(int32(-42)); got != 42 {
		t.Fatalf("Abs(-42) = %d, want 42", got)
	}
	if got := Abs(int32(42)); got != 42 {
		t.Fatalf("Abs(42) = %d, want 42", got)
	}
	if got := Abs(float32(-1.5)); got != 1.5 {
		t.Fatalf("Abs(-1.5) = %v, want 1.5", got)
	}
	if got := Abs(0.0); got != 0 {
		t.Fatalf("Abs(0) = %v, want 0", got)
	}
}
