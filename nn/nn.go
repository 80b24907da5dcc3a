// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/nodegrad/autodiff"
	"github.com/born-ml/nodegrad/internal/nn"
)

// Module is a differentiable function of its inputs with trainable parameters.
type Module = nn.Module

// Parameter is a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a parameter with the given name and initial value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// Scope binds parameters into one graph.
type Scope = nn.Scope

// NewScope creates a scope recording into g.
func NewScope(g *autodiff.Graph) *Scope {
	return nn.NewScope(g)
}

// Initializer returns the initial value of one parameter per call.
type Initializer = nn.Initializer

// Uniform draws initial values from U(lo, hi) using rng.
func Uniform(rng *rand.Rand, lo, hi float64) Initializer {
	return nn.Uniform(rng, lo, hi)
}

// Constant initializes every parameter to v.
func Constant(v float64) Initializer {
	return nn.Constant(v)
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return nn.NewRand(seed)
}

// Layers

// Neuron computes tanh(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
//
// Example:
//
//	n := nn.NewNeuron("n", 2, nn.Uniform(nn.NewRand(1), -1, 1))
func NewNeuron(name string, nin int, init Initializer) *Neuron {
	return nn.NewNeuron(name, nin, init)
}

// Layer is a set of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, init Initializer) *Layer {
	return nn.NewLayer(name, nin, nout, init)
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a container applying modules in order.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewMLP creates a multi-layer perceptron with nin inputs and the given
// layer widths.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(nn.NewRand(1337), -1, 1))
func NewMLP(nin int, nouts []int, init Initializer) *Sequential {
	return nn.NewMLP(nin, nouts, init)
}

// Loss functions

// SquaredError returns (pred - target)².
func SquaredError(pred autodiff.Value, target float64) autodiff.Value {
	return nn.SquaredError(pred, target)
}

// SumSquaredError returns the sum of squared errors over all outputs.
func SumSquaredError(preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	return nn.SumSquaredError(preds, targets)
}

// Serialization

// StateDict returns parameter values keyed by name.
func StateDict(m Module) map[string]float64 {
	return nn.StateDict(m)
}

// LoadStateDict sets the parameters of m from sd.
func LoadStateDict(m Module, sd map[string]float64) error {
	return nn.LoadStateDict(m, sd)
}

// Checkpoint is a saved training state.
type Checkpoint = nn.Checkpoint

// LoadCheckpoint restores the checkpoint at path into model.
func LoadCheckpoint(path string, model Module) (*Checkpoint, error) {
	return nn.LoadCheckpoint(path, model)
}

// Errors.
var (
	ErrInputSize        = nn.ErrInputSize
	ErrTargetSize       = nn.ErrTargetSize
	ErrMissingParameter = nn.ErrMissingParameter
)
