package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/nodegrad/internal/autodiff/ops"
)

// Value is a handle to one node of a Graph.
//
// Values are cheap to copy. Two Values refer to the same node only if they
// come from the same construction; equal data never makes two nodes equal.
// The zero Value is invalid.
type Value struct {
	g   *Graph
	id  int32
	gen uint32
}

// check reports why v cannot be used, or nil.
func (v Value) check() error {
	switch {
	case v.g == nil:
		return ErrInvalidValue
	case v.gen != v.g.gen:
		return ErrStaleValue
	case v.id < 0:
		if v.g.err != nil {
			return v.g.err
		}
		return ErrInvalidValue
	case int(v.id) >= len(v.g.nodes):
		return ErrStaleValue
	}
	return nil
}

func (v Value) node() *node {
	return &v.g.nodes[v.id]
}

// IsValid reports whether v refers to a live node.
func (v Value) IsValid() bool {
	return v.check() == nil
}

// Graph returns the graph v belongs to, or nil for the zero Value.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the arena index of v. Operands always have lower IDs than the
// nodes consuming them.
func (v Value) ID() int {
	return int(v.id)
}

// Data returns the forward result, or NaN for an invalid Value.
func (v Value) Data() float64 {
	if v.check() != nil {
		return math.NaN()
	}
	return v.node().data
}

// Grad returns the accumulated gradient, or NaN for an invalid Value.
// It is only meaningful after Backward.
func (v Value) Grad() float64 {
	if v.check() != nil {
		return math.NaN()
	}
	return v.node().grad
}

// Op returns the kind of operation that produced v.
func (v Value) Op() ops.Kind {
	if v.check() != nil {
		return ops.Leaf
	}
	return v.node().op
}

// OpLabel returns the operator symbol of v, including the exponent of a
// constant power (e.g. "**2").
func (v Value) OpLabel() string {
	if v.check() != nil {
		return ""
	}
	n := v.node()
	if n.op == ops.PowConst {
		return fmt.Sprintf("**%g", n.exponent)
	}
	return n.op.String()
}

// Label returns the debug name of v.
func (v Value) Label() string {
	if v.check() != nil {
		return ""
	}
	return v.node().label
}

// SetLabel names v for debugging and graph rendering and returns v.
func (v Value) SetLabel(label string) Value {
	if v.check() == nil {
		v.node().label = label
	}
	return v
}

// Operands returns the nodes v was computed from, in argument order.
// A node used twice (a+a) appears twice.
func (v Value) Operands() []Value {
	if v.check() != nil {
		return nil
	}
	n := v.node()
	out := make([]Value, n.nargs)
	for i := range out {
		out[i] = Value{g: v.g, id: n.args[i], gen: v.gen}
	}
	return out
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if err := v.check(); err != nil {
		return fmt.Sprintf("Value(invalid: %v)", err)
	}
	n := v.node()
	return fmt.Sprintf("Value(data=%g, grad=%g, label=%s)", n.data, n.grad, n.label)
}
