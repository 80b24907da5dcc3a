// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on top of autodiff.
//
// # Overview
//
// This package contains:
//   - Parameter: a trainable scalar living outside any graph
//   - Scope: binds parameters into one graph and folds gradients back
//   - Neuron, Layer, Sequential and NewMLP: tanh networks
//   - SquaredError and SumSquaredError losses
//   - StateDict and Checkpoint for saving and restoring weights
//
// # Basic Usage
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(nn.NewRand(1337), -1, 1))
//
//	g := autodiff.NewGraph()
//	scope := nn.NewScope(g)
//	out, err := model.Forward(scope, scope.Inputs([]float64{2, 3, -1}))
//	if err != nil {
//	    return err
//	}
//	loss, err := nn.SumSquaredError(out, []float64{1})
//	if err != nil {
//	    return err
//	}
//	if err := loss.Backward(); err != nil {
//	    return err
//	}
//	if err := scope.Accumulate(); err != nil {  // param.Grad() now holds dLoss/dparam
//	    return err
//	}
//
// # Parameters and graphs
//
// Parameters outlive graphs. Each forward pass records the parameters it uses
// into a fresh graph through a Scope; a parameter used by several neurons is
// still a single node there, so its gradient sums every use. Several graphs
// may be evaluated concurrently from the same model as long as Accumulate and
// optimizer updates run sequentially.
package nn
