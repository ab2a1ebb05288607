package utils

import "golang.org/x/exp/constraints"

func Clamp[T constraints.Integer | constraints.Float](min, value, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ZeroAdjust returns 1 for a value of 0, and the value otherwise.
func ZeroAdjust[T constraints.Unsigned](v T) T {
	if v == 0 {
		return 1
	}
	return v
}
