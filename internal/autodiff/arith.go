package autodiff

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/autodiff/ops"
)

// Operations accept their right-hand operand as any: a Value of the same
// graph, or a Go number. Numbers are recorded as constant leaves; their
// gradient feeds nothing.
//
// On failure an operation records the error on the graph, creates no node
// and returns an invalid Value. See Graph.Err.

// Add returns v + other.
func (v Value) Add(other any) Value {
	return v.binary(ops.Add, other)
}

// Mul returns v * other.
func (v Value) Mul(other any) Value {
	return v.binary(ops.Mul, other)
}

// Div returns v / other. Fails with ErrDivisionByZero when other is zero.
func (v Value) Div(other any) Value {
	return v.binary(ops.Div, other)
}

// Neg returns -v.
func (v Value) Neg() Value {
	return v.unary(ops.Neg, 0)
}

// Sub returns v - other, recorded as v + (-other).
func (v Value) Sub(other any) Value {
	g, ok := v.begin()
	if !ok {
		return v.failedLike()
	}
	o, err := g.resolve(other)
	if err != nil {
		return g.fail(fmt.Errorf("sub: %w", err))
	}
	if o.constant {
		return v.Add(-o.data)
	}
	return v.Add(o.v.Neg())
}

// Pow returns v raised to other.
//
// A numeric exponent is a constant. Backward then fails with
// ErrDivisionByZero for v = 0 and 0 < k < 1. A Value exponent is
// differentiated too, which requires v > 0 at Backward time.
func (v Value) Pow(other any) Value {
	g, ok := v.begin()
	if !ok {
		return v.failedLike()
	}
	o, err := g.resolve(other)
	if err != nil {
		return g.fail(fmt.Errorf("pow: %w", err))
	}
	if o.constant {
		return v.unary(ops.PowConst, o.data)
	}
	return v.binary(ops.PowNode, other)
}

// Exp returns e^v.
func (v Value) Exp() Value {
	return v.unary(ops.Exp, 0)
}

// Tanh returns the hyperbolic tangent of v.
func (v Value) Tanh() Value {
	return v.unary(ops.Tanh, 0)
}

// ReLU returns max(0, v).
func (v Value) ReLU() Value {
	return v.unary(ops.ReLU, 0)
}

// Sigmoid returns 1 / (1 + e^(-v)).
func (v Value) Sigmoid() Value {
	return v.unary(ops.Sigmoid, 0)
}

// Log returns the natural logarithm of v. Fails with ErrDomain for v <= 0.
func (v Value) Log() Value {
	return v.unary(ops.Log, 0)
}

// RAdd returns x + v as a plain number.
//
// Reflected operations model a number on the left of a Value. The result is a
// plain number and cannot take part in Backward. Like Data, an invalid v
// yields NaN.
func (v Value) RAdd(x float64) float64 {
	return x + v.Data()
}

// RMul returns x * v as a plain number. See RAdd.
func (v Value) RMul(x float64) float64 {
	return x * v.Data()
}

// RSub returns x - v as a plain number, computed as x + (-v). See RAdd.
// The negation is recorded on v's graph as a Neg node.
func (v Value) RSub(x float64) float64 {
	return v.Neg().RAdd(x)
}

// Sum returns start + vs[0] + vs[1] + ... as a chain of additions.
func Sum(start Value, vs ...Value) Value {
	acc := start
	for _, v := range vs {
		acc = acc.Add(v)
	}
	return acc
}

// begin returns the graph an operation on v records into, or false if the
// operation must not run. Misuse of a stale handle is recorded.
func (v Value) begin() (*Graph, bool) {
	if v.g == nil || v.g.err != nil {
		return nil, false
	}
	if err := v.check(); err != nil {
		v.g.fail(err)
		return nil, false
	}
	return v.g, true
}

func (v Value) failedLike() Value {
	if v.g == nil {
		return Value{}
	}
	return v.g.failed()
}

func (v Value) binary(k ops.Kind, other any) Value {
	g, ok := v.begin()
	if !ok {
		return v.failedLike()
	}
	o, err := g.resolve(other)
	if err != nil {
		return g.fail(fmt.Errorf("%s: %w", k.Name(), err))
	}

	out, err := ops.Forward(k, v.node().data, o.data)
	if err != nil {
		return g.fail(err)
	}

	b := g.record(o)
	return g.push(node{
		data:  out,
		op:    k,
		args:  [2]int32{v.id, b},
		nargs: 2,
	})
}

func (v Value) unary(k ops.Kind, c float64) Value {
	g, ok := v.begin()
	if !ok {
		return v.failedLike()
	}

	out, err := ops.Forward(k, v.node().data, c)
	if err != nil {
		return g.fail(err)
	}

	return g.push(node{
		data:     out,
		op:       k,
		exponent: c,
		args:     [2]int32{v.id},
		nargs:    1,
	})
}
