package splash

import "math"

// roundHalfToEven rounds a 32-bit float to the nearest integer, ties to
// even. Spec §4.1/§9 requires only that encoder and decoder agree on one
// rounding convention; round-half-to-even is the recommended one and is
// used uniformly by every rounding site in this package (ruler rebalancing,
// alpha computation, sample-budget rounding).
func roundHalfToEven(f float32) int64 {
	return int64(math.RoundToEven(float64(f)))
}
