package autodiff

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/autodiff/ops"
)

// Backward computes the gradient of v with respect to every node it depends
// on.
//
// Algorithm:
//  1. Order the reachable nodes topologically
//  2. Seed v's gradient with 1
//  3. Walk the order in reverse, so that a node's gradient is complete
//     before it is propagated, adding each local rule's contributions into
//     the operand gradients
//
// Nothing is mutated unless the whole pass can succeed. Backward fails with
// the graph's recorded forward error, with ErrStaleGradient if a reachable
// node still carries gradient from an earlier pass, and with ErrDomain for a
// Value exponent whose base is not positive.
func (v Value) Backward() error {
	if err := v.check(); err != nil {
		return err
	}
	if v.g.err != nil {
		return v.g.err
	}

	g := v.g
	order := g.topological(v.id)
	if err := g.checkBackward(order); err != nil {
		return err
	}

	g.nodes[v.id].grad = 1.0
	for i := len(order) - 1; i >= 0; i-- {
		n := &g.nodes[order[i]]
		if n.nargs == 0 {
			continue
		}

		da, db, err := ops.Backward(n.op, g.nodes[n.args[0]].data, g.second(n), n.data, n.grad)
		if err != nil {
			return fmt.Errorf("backward: node %d: %w", order[i], err)
		}

		g.nodes[n.args[0]].grad += da
		if n.nargs == 2 {
			g.nodes[n.args[1]].grad += db
		}
	}

	return nil
}

// checkBackward validates a pass over order before any gradient changes.
func (g *Graph) checkBackward(order []int32) error {
	for _, id := range order {
		n := &g.nodes[id]
		if n.grad != 0 {
			return fmt.Errorf("backward: node %d has grad %g: %w", id, n.grad, ErrStaleGradient)
		}
		if n.nargs == 0 {
			continue
		}
		if err := ops.CheckBackward(n.op, g.nodes[n.args[0]].data, g.second(n)); err != nil {
			return fmt.Errorf("backward: node %d: %w", id, err)
		}
	}
	return nil
}

// ZeroGrad clears the gradient of v and of every node it depends on.
func (v Value) ZeroGrad() error {
	if err := v.check(); err != nil {
		return err
	}
	for _, id := range v.g.topological(v.id) {
		v.g.nodes[id].grad = 0
	}
	return nil
}
