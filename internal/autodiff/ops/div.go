package ops

import "fmt"

// divForward computes a / b. Same result as a * b^-1.
func divForward(a, b float64) (float64, error) {
	if err := checkDivisor(b); err != nil {
		return 0, err
	}
	return a / b, nil
}

// divBackward computes input gradients for division.
//
//	grad_a = up / b
//	grad_b = -up * a / b²
func divBackward(a, b, up float64) (da, db float64, err error) {
	if err := checkDivisor(b); err != nil {
		return 0, 0, err
	}
	return up / b, -up * a / (b * b), nil
}

func checkDivisor(b float64) error {
	if b == 0 {
		return fmt.Errorf("div: %w", ErrDivisionByZero)
	}
	return nil
}
