// Package graphviz renders a recorded computation graph as Graphviz DOT.
//
// Every value becomes a record node showing its label, data and gradient.
// Every computed value also gets a small operator node, so an edge runs
// from each operand to the operator and from the operator to the result:
//
//	a ─┐
//	   (*) ── e
//	b ─┘
//
// Rendering reads the graph through autodiff's Trace and never modifies it.
package graphviz

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// Name is the DOT graph name used by Marshal.
const Name = "nodegrad"

// Marshal returns the DOT rendering of everything reachable from root.
func Marshal(root autodiff.Value) ([]byte, error) {
	g, err := build(root)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(g, Name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("graphviz: marshal: %w", err)
	}
	return b, nil
}

// Write writes the DOT rendering of root to w.
func Write(w io.Writer, root autodiff.Value) error {
	b, err := Marshal(root)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("graphviz: write: %w", err)
	}
	return nil
}

// build converts the trace of root into a gonum directed graph.
func build(root autodiff.Value) (digraph, error) {
	tr, err := root.Trace()
	if err != nil {
		return digraph{}, fmt.Errorf("graphviz: trace: %w", err)
	}

	g := digraph{DirectedGraph: simple.NewDirectedGraph()}
	for _, v := range tr.Nodes {
		g.AddNode(valueNode{v})
		if v.OpLabel() != "" {
			op := opNode{v}
			g.AddNode(op)
			g.SetEdge(g.NewEdge(op, valueNode{v}))
		}
	}
	for _, e := range tr.Edges {
		g.SetEdge(g.NewEdge(valueNode{e.From}, opNode{e.To}))
	}

	return g, nil
}

// digraph adds top-level DOT attributes to a simple directed graph.
type digraph struct {
	*simple.DirectedGraph
}

// DOTAttributers lays the graph out left to right.
func (digraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return attributes{{Key: "rankdir", Value: "LR"}}, attributes{}, attributes{}
}

type attributes []encoding.Attribute

func (a attributes) Attributes() []encoding.Attribute {
	return a
}

// Value and operator nodes share the ID space: 2i for value i, 2i+1 for
// its operator.

type valueNode struct {
	v autodiff.Value
}

func (n valueNode) ID() int64     { return 2 * int64(n.v.ID()) }
func (n valueNode) DOTID() string { return fmt.Sprintf("v%d", n.v.ID()) }

func (n valueNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "shape", Value: "record"},
		{Key: "label", Value: fmt.Sprintf("{ %s | data %.4f | grad %.4f }", n.v.Label(), n.v.Data(), n.v.Grad())},
	}
}

type opNode struct {
	v autodiff.Value
}

func (n opNode) ID() int64     { return 2*int64(n.v.ID()) + 1 }
func (n opNode) DOTID() string { return fmt.Sprintf("v%d_op", n.v.ID()) }

func (n opNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: n.v.OpLabel()},
	}
}
