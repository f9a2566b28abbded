package kernel

import (
	"math"

	"astraea/hal"
)

// DefaultTimerHz is the rate of PIT channel 0 with the maximum reload value.
const DefaultTimerHz = float64(hal.PITBaseHz) / 65536

// DivisorFor returns the PIT reload value closest to hz. Zero encodes 65536,
// the slowest rate (≈18.2 Hz); rates below it are clamped.
func DivisorFor(hz float64) uint16 {
	if hz <= 0 || math.IsNaN(hz) {
		return 0
	}
	d := math.Round(float64(hal.PITBaseHz) / hz)
	switch {
	case d >= 65536:
		return 0
	case d < 1:
		return 1
	default:
		return uint16(d)
	}
}

// RateFor returns the interrupt rate produced by divisor.
func RateFor(divisor uint16) float64 {
	n := float64(divisor)
	if divisor == 0 {
		n = 65536
	}
	return float64(hal.PITBaseHz) / n
}
