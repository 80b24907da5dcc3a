// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers update nn.Parameter values in place from the gradients
// accumulated on them.
//
// # Training Loop Pattern
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(nn.NewRand(1337), -1, 1))
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range 100 {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward and backward pass on a fresh graph per sample
//	    for i, x := range xs {
//	        scope := nn.NewScope(autodiff.NewGraph())
//	        out, _ := model.Forward(scope, scope.Inputs(x))
//	        loss, _ := nn.SumSquaredError(out, ys[i])
//	        _ = loss.Backward()
//	        _ = scope.Accumulate()
//	    }
//
//	    // 3. Update parameters
//	    optimizer.Step()
//	}
package optim
