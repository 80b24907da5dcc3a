package autodiff

// Edge connects an operand to the node consuming it.
type Edge struct {
	From Value
	To   Value
}

// Trace is a read-only snapshot of the nodes and edges reachable from a root.
type Trace struct {
	Nodes []Value // topological order, root last
	Edges []Edge  // operand -> consumer, each pair once
}

// Trace collects the subgraph reachable from v without modifying it.
func (v Value) Trace() (Trace, error) {
	nodes, err := v.Topological()
	if err != nil {
		return Trace{}, err
	}

	var edges []Edge
	for _, n := range nodes {
		args := n.Operands()
		for i, a := range args {
			if i == 1 && a.id == args[0].id {
				continue
			}
			edges = append(edges, Edge{From: a, To: n})
		}
	}

	return Trace{Nodes: nodes, Edges: edges}, nil
}
