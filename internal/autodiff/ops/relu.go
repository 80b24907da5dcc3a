package ops

// reluForward computes max(0, a).
func reluForward(a float64) float64 {
	if a > 0 {
		return a
	}
	return 0
}

// reluBackward passes up through where the output is positive.
// The subgradient at 0 is taken as 0.
func reluBackward(out, up float64) float64 {
	if out > 0 {
		return up
	}
	return 0
}
