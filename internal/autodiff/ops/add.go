package ops

// addForward computes a + b.
func addForward(a, b float64) float64 {
	return a + b
}

// addBackward routes the output gradient unchanged to both operands.
func addBackward(up float64) (da, db float64) {
	return up, up
}
