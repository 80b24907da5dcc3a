package nn

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// Scope binds parameters into a single graph.
//
// Each parameter is recorded once per scope, so a parameter used by several
// consumers is one node with fan-out and receives the sum of their
// contributions. A Scope is as single-threaded as its graph.
type Scope struct {
	g      *autodiff.Graph
	bound  map[*Parameter]autodiff.Value
	params []*Parameter // binding order
}

// NewScope creates a scope recording into g.
func NewScope(g *autodiff.Graph) *Scope {
	return &Scope{
		g:     g,
		bound: make(map[*Parameter]autodiff.Value),
	}
}

// Graph returns the graph the scope records into.
func (s *Scope) Graph() *autodiff.Graph {
	return s.g
}

// Bind returns the leaf holding p in this scope's graph, recording it on
// first use.
func (s *Scope) Bind(p *Parameter) autodiff.Value {
	if v, ok := s.bound[p]; ok {
		return v
	}
	v := s.g.Leaf(p.Data()).SetLabel(p.Name())
	s.bound[p] = v
	s.params = append(s.params, p)
	return v
}

// Inputs records xs as leaves labelled x0, x1, ...
func (s *Scope) Inputs(xs []float64) []autodiff.Value {
	out := make([]autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = s.g.Leaf(x).SetLabel(fmt.Sprintf("x%d", i))
	}
	return out
}

// Bound returns the number of parameters bound so far.
func (s *Scope) Bound() int {
	return len(s.params)
}

// Accumulate adds the gradient of every bound leaf into its parameter.
// Call it once after a successful Backward.
func (s *Scope) Accumulate() error {
	if err := s.g.Err(); err != nil {
		return err
	}
	for _, p := range s.params {
		v := s.bound[p]
		if !v.IsValid() {
			return fmt.Errorf("accumulate %s: %w", p.Name(), autodiff.ErrStaleValue)
		}
		p.AddGrad(v.Grad())
	}
	return nil
}
