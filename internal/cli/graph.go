package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/nodegrad/internal/autodiff"
	"github.com/born-ml/nodegrad/internal/graphviz"
)

// Examples accepted by the graph command.
var examples = map[string]func(g *autodiff.Graph) autodiff.Value{
	"expression": Expression,
	"neuron":     Neuron,
}

// Expression builds L = (a*b + c) * f with a=2, b=-3, c=10, f=-2.
func Expression(g *autodiff.Graph) autodiff.Value {
	a := g.Leaf(2.0).SetLabel("a")
	b := g.Leaf(-3.0).SetLabel("b")
	c := g.Leaf(10.0).SetLabel("c")
	f := g.Leaf(-2.0).SetLabel("f")

	e := a.Mul(b).SetLabel("e")
	d := e.Add(c).SetLabel("d")
	return d.Mul(f).SetLabel("L")
}

// Neuron builds o = tanh(x1*w1 + x2*w2 + b), with b chosen so that n = 0.8814
// and o ≈ 0.7071.
func Neuron(g *autodiff.Graph) autodiff.Value {
	x1 := g.Leaf(2.0).SetLabel("x1")
	x2 := g.Leaf(0.0).SetLabel("x2")
	w1 := g.Leaf(-3.0).SetLabel("w1")
	w2 := g.Leaf(1.0).SetLabel("w2")
	b := g.Leaf(6.8813735870195432).SetLabel("b")

	x1w1 := x1.Mul(w1).SetLabel("x1*w1")
	x2w2 := x2.Mul(w2).SetLabel("x2*w2")
	n := x1w1.Add(x2w2).Add(b).SetLabel("n")
	return n.Tanh().SetLabel("o")
}

type nodeRow struct {
	ID    int     `json:"id"`
	Label string  `json:"label,omitempty"`
	Op    string  `json:"op,omitempty"`
	Data  float64 `json:"data"`
	Grad  float64 `json:"grad"`
}

// NewGraphCmd creates the graph command.
func NewGraphCmd() *cobra.Command {
	var example string
	var outPath string
	var table bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Differentiate an example expression and print its graph",
		Long: `Builds a small example expression, runs backward from its output and
prints the resulting graph with data and gradients. The default output is
Graphviz DOT; --table and --json print one row per value instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := examples[example]
			if !ok {
				return fmt.Errorf("unknown example %q (expression, neuron)", example)
			}

			root := build(autodiff.NewGraph())
			if err := root.Backward(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if !table && !jsonOutput {
				return graphviz.Write(w, root)
			}

			trace, err := root.Trace()
			if err != nil {
				return err
			}
			rows := make([][]string, len(trace.Nodes))
			data := make([]nodeRow, len(trace.Nodes))
			for i, v := range trace.Nodes {
				data[i] = nodeRow{ID: v.ID(), Label: v.Label(), Op: v.OpLabel(), Data: v.Data(), Grad: v.Grad()}
				rows[i] = []string{
					strconv.Itoa(v.ID()),
					v.Label(),
					v.OpLabel(),
					strconv.FormatFloat(v.Data(), 'g', 6, 64),
					strconv.FormatFloat(v.Grad(), 'g', 6, 64),
				}
			}
			return NewOutput(w, jsonOutput).Print([]string{"ID", "LABEL", "OP", "DATA", "GRAD"}, rows, data)
		},
	}

	cmd.Flags().StringVar(&example, "example", "expression", "Example to build (expression, neuron)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&table, "table", false, "Print a table instead of DOT")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of DOT")

	return cmd
}
