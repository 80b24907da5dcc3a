// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Graph: arena owning every node created during a forward pass
//   - Value: small handle (graph, index) to one node of the arena
//   - ops.Kind: tag of the operation that produced a node; the local
//     gradient rules live in the ops package behind one dispatch function
//   - Backward: topological order + reverse walk applying the chain rule
//
// Operands only ever refer to nodes created before them, so the recorded
// graph is acyclic by construction.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3).SetLabel("x")
//	y := x.Pow(2) // y = x²
//
//	if err := y.Backward(); err != nil {
//	    return err
//	}
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6
package autodiff

import "github.com/born-ml/nodegrad/internal/autodiff/ops"

// Graph owns the nodes recorded during a forward pass.
//
// Nodes are addressed by their index in the arena. Operations that fail
// record the first error on the graph and create no node; every later
// operation on the graph is a no-op until Reset. Backward reports the
// recorded error.
//
// A Graph is not safe for concurrent use. Independent graphs share no state.
type Graph struct {
	nodes []node
	gen   uint32 // bumped by Reset, invalidates older handles
	err   error  // first forward failure
}

// node is one arena slot. args holds operand indices, all lower than the
// node's own index.
type node struct {
	data     float64
	grad     float64
	exponent float64 // constant exponent for ops.PowConst
	args     [2]int32
	nargs    uint8
	op       ops.Kind
	label    string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64),
	}
}

// Leaf records a leaf value holding x.
func (g *Graph) Leaf(x float64) Value {
	if g.err != nil {
		return g.failed()
	}
	return g.push(node{data: x, op: ops.Leaf})
}

// Leaves records one leaf per element of xs.
func (g *Graph) Leaves(xs ...float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = g.Leaf(x)
	}
	return out
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Err returns the first error recorded by a forward operation, if any.
func (g *Graph) Err() error {
	return g.err
}

// Reset discards every node and the recorded error so the arena can be
// reused for the next forward pass. Values obtained before Reset become
// stale and are rejected by every operation.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:0]
	g.gen++
	g.err = nil
}

func (g *Graph) push(n node) Value {
	id := int32(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: id, gen: g.gen}
}

// fail records err if it is the first failure and returns the failed handle.
func (g *Graph) fail(err error) Value {
	if g.err == nil {
		g.err = err
	}
	return g.failed()
}

// failed returns a handle that carries the graph but points at no node.
func (g *Graph) failed() Value {
	return Value{g: g, id: -1, gen: g.gen}
}

// second returns the value the local rule of n reads as its second input.
func (g *Graph) second(n *node) float64 {
	switch {
	case n.op == ops.PowConst:
		return n.exponent
	case n.nargs == 2:
		return g.nodes[n.args[1]].data
	default:
		return 0
	}
}
