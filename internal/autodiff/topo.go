package autodiff

// Topological returns every node reachable from v through operand edges,
// each exactly once, with every operand before the nodes that consume it.
// v itself is last.
func (v Value) Topological() ([]Value, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	order := v.g.topological(v.id)
	out := make([]Value, len(order))
	for i, id := range order {
		out[i] = Value{g: v.g, id: id, gen: v.gen}
	}
	return out, nil
}

// topological is an iterative post-order depth-first walk from root.
//
// Operands always have lower indices than their consumers, so a visited
// array of root+1 entries covers every reachable node.
func (g *Graph) topological(root int32) []int32 {
	type frame struct {
		id       int32
		expanded bool // operands already pushed, emit on pop
	}

	visited := make([]bool, root+1)
	order := make([]int32, 0, root+1)
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.id)
			continue
		}
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		stack = append(stack, frame{id: f.id, expanded: true})
		n := &g.nodes[f.id]
		for i := int(n.nargs) - 1; i >= 0; i-- {
			if a := n.args[i]; !visited[a] {
				stack = append(stack, frame{id: a})
			}
		}
	}

	return order
}
