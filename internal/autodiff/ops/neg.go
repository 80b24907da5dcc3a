package ops

// negForward computes -a. It is the same as a * -1 without a constant operand.
func negForward(a float64) float64 {
	return -a
}

func negBackward(up float64) float64 {
	return -up
}
