package shape

import "math"

// Morph bounds for the shape exponents. Both oscillate in
// [MinExponent, MaxExponent].
const (
	MinExponent = 0.2
	MaxExponent = 2.0
)

// ParamsAt returns the shape parameters for the given elapsed time in
// seconds. The exponents oscillate with incommensurate angular
// frequencies (1.2 and 0.8 rad/s) so the combined shape trajectory
// does not repeat over any short window. Radii are fixed at 1.
func ParamsAt(t float64) Params {
	return Params{
		A:  1,
		B:  1,
		C:  1,
		N1: MinExponent + (MaxExponent-MinExponent)*(0.5+0.5*float32(math.Sin(1.2*t))),
		N2: MinExponent + (MaxExponent-MinExponent)*(0.5+0.5*float32(math.Cos(0.8*t))),
	}
}
