// Package nn composes neurons, layers and multi-layer perceptrons on top of
// the scalar autodiff engine.
//
// This package provides:
//   - Parameter: trainable scalar living outside any graph
//   - Scope: binds parameters into one graph and collects their gradients
//   - Module interface: base interface for all components
//   - Neuron, Layer, Sequential/MLP
//   - Loss functions: squared error
//
// A fresh graph is built for every forward pass, so gradients never go
// stale between iterations:
//
//	g := autodiff.NewGraph()
//	s := nn.NewScope(g)
//	out, err := model.Forward(s, s.Inputs(x))
//	loss, err := nn.SumSquaredError(out, y)
//	err = loss.Backward()
//	err = s.Accumulate() // parameter grads += graph grads
package nn

import "github.com/born-ml/nodegrad/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build larger networks:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("l0", 3, 4, init),
//	    nn.NewLayer("l1", 4, 1, init),
//	)
type Module interface {
	// Forward records the module applied to x into the scope's graph and
	// returns the outputs.
	Forward(s *Scope, x []autodiff.Value) ([]autodiff.Value, error)

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules.
	Parameters() []*Parameter
}
