package ops

import "math"

// sigmoidForward computes σ(a) = 1 / (1 + e^(-a)).
//
// For negative a the equivalent e^a / (1 + e^a) is used so that e^(-a)
// cannot overflow.
func sigmoidForward(a float64) float64 {
	if a >= 0 {
		return 1 / (1 + math.Exp(-a))
	}
	e := math.Exp(a)
	return e / (1 + e)
}

// sigmoidBackward uses the output we already have:
// grad_a = up * σ(a) * (1 - σ(a)).
func sigmoidBackward(out, up float64) float64 {
	return out * (1 - out) * up
}
