// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradients accumulated on nn.Parameter values and
// update the parameter data in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    optimizer.ZeroGrad()
//	    // forward, loss.Backward(), scope.Accumulate() per sample
//	    optimizer.Step()
//	}
package optim

import "github.com/born-ml/nodegrad/internal/nn"

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter from its accumulated
	// gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each iteration's backward passes to
	// prevent gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
