package ops

// mulForward computes a * b.
func mulForward(a, b float64) float64 {
	return a * b
}

// mulBackward: grad_a = b * up, grad_b = a * up.
func mulBackward(a, b, up float64) (da, db float64) {
	return b * up, a * up
}
