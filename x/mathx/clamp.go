package mathx

import "golang.org/x/exp/constraints"

// Signed numeric domains Abs accepts.
type Number interface {
	constraints.Signed | constraints.Float
}

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Abs returns the magnitude of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
