// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation on a Value records a node in its Graph. Calling
// Backward on a result fills in the gradient of that result with respect to
// every value it was computed from.
//
// Example:
//
//	import "github.com/born-ml/nodegrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a := g.Leaf(2).SetLabel("a")
//	    b := g.Leaf(-3).SetLabel("b")
//	    c := g.Leaf(10).SetLabel("c")
//
//	    l := a.Mul(b).Add(c)  // l = a*b + c = 4
//	    if err := l.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(a.Grad(), b.Grad())  // -3 2
//	}
//
// Operands may be Values or plain numbers; numbers are recorded as constant
// leaves. Errors are sticky: a failed operation records its error on the
// graph and every later operation is a no-op, so a whole expression can be
// written without per-step checks and validated once at Backward.
package autodiff

import (
	"github.com/born-ml/nodegrad/internal/autodiff"
	"github.com/born-ml/nodegrad/internal/autodiff/ops"
)

// Graph owns the nodes of one computation.
type Graph = autodiff.Graph

// Value is a handle to one node of a Graph.
type Value = autodiff.Value

// Kind identifies the operation that produced a Value.
type Kind = ops.Kind

// Operation kinds.
const (
	OpLeaf     = ops.Leaf
	OpAdd      = ops.Add
	OpMul      = ops.Mul
	OpNeg      = ops.Neg
	OpPowConst = ops.PowConst
	OpPowNode  = ops.PowNode
	OpDiv      = ops.Div
	OpExp      = ops.Exp
	OpTanh     = ops.Tanh
	OpReLU     = ops.ReLU
	OpSigmoid  = ops.Sigmoid
	OpLog      = ops.Log
)

// Trace is the set of nodes and edges reachable from a root.
type Trace = autodiff.Trace

// Edge connects an operand to the value computed from it.
type Edge = autodiff.Edge

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Sum returns start + vs[0] + vs[1] + ...
func Sum(start Value, vs ...Value) Value {
	return autodiff.Sum(start, vs...)
}

// Errors returned by graph operations and Backward.
var (
	ErrDomain         = autodiff.ErrDomain
	ErrDivisionByZero = autodiff.ErrDivisionByZero
	ErrInvalidOperand = autodiff.ErrInvalidOperand
	ErrGraphMismatch  = autodiff.ErrGraphMismatch
	ErrInvalidValue   = autodiff.ErrInvalidValue
	ErrStaleValue     = autodiff.ErrStaleValue
	ErrStaleGradient  = autodiff.ErrStaleGradient
)
