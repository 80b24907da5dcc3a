package ops

import (
	"fmt"
	"math"
)

// powForward computes a^k for both the constant and node exponent forms.
//
// A zero base with a negative exponent divides by zero, and a negative base
// with a non-integer exponent has no real result; both are rejected instead
// of producing Inf or NaN.
func powForward(a, k float64) (float64, error) {
	if a == 0 && k < 0 {
		return 0, fmt.Errorf("pow: 0^%g: %w", k, ErrDivisionByZero)
	}
	if a < 0 && k != math.Trunc(k) {
		return 0, fmt.Errorf("pow: (%g)^%g: %w", a, k, ErrDomain)
	}
	return math.Pow(a, k), nil
}

// powConstBackward: grad_a = k * a^(k-1) * up.
//
// a^0 is constant, so k = 0 contributes nothing even at a = 0.
func powConstBackward(a, k, up float64) (float64, error) {
	if k == 0 {
		return 0, nil
	}
	if err := checkConstBase(a, k); err != nil {
		return 0, err
	}
	return k * math.Pow(a, k-1) * up, nil
}

// checkConstBase rejects a zero base when k-1 < 0: the slope of a^k at 0 is
// then infinite.
func checkConstBase(a, k float64) error {
	if a == 0 && k != 0 && k < 1 {
		return fmt.Errorf("pow: d/dbase of 0^%g: %w", k, ErrDivisionByZero)
	}
	return nil
}

// powNodeBackward differentiates a^b with respect to both base and exponent.
//
//	grad_a = b * a^(b-1) * up
//	grad_b = a^b * ln(a) * up
//
// The exponent derivative needs ln(a), so a must be strictly positive.
func powNodeBackward(a, b, out, up float64) (da, db float64, err error) {
	if err := checkLogBase(a); err != nil {
		return 0, 0, err
	}
	da = b * math.Pow(a, b-1) * up
	db = out * math.Log(a) * up
	return da, db, nil
}

func checkLogBase(a float64) error {
	if a <= 0 {
		return fmt.Errorf("pow: d/dexponent needs ln(%g): %w", a, ErrDomain)
	}
	return nil
}
