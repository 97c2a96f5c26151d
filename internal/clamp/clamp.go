// Package clamp keeps drag-driven handle positions and channel values inside
// their tracks.
//
// Both functions combine a committed normalized value with the live pixel
// delta of an in-progress drag. They must be called with the length and the
// delta of the same axis.
package clamp

import "math"

// Position returns the on-screen offset of a handle, in [0, length].
func Position(value, length, delta float64) float64 {
	if !usable(length) {
		return 0
	}
	sum := known(value)*length + displacement(delta)
	if sum > length {
		return length
	}
	if sum < 0 {
		return 0
	}
	return sum
}

// Value returns the normalized channel value, in [0, 1].
func Value(value, length, delta float64) float64 {
	if !usable(length) {
		return unit(known(value))
	}
	return unit(known(value) + displacement(delta)/length)
}

func unit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// displacement treats a malformed delta as no movement at all.
func displacement(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return d
}

func known(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func usable(length float64) bool {
	return length > 0 && !math.IsInf(length, 1)
}
