package ops

import (
	"fmt"
	"math"
)

// logForward computes ln(a) for a > 0.
func logForward(a float64) (float64, error) {
	if a <= 0 {
		return 0, fmt.Errorf("log: ln(%g): %w", a, ErrDomain)
	}
	return math.Log(a), nil
}

// logBackward: grad_a = up / a. a > 0 was checked by logForward.
func logBackward(a, up float64) float64 {
	return up / a
}
