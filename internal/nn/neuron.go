package nn

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// Neuron computes tanh(w·x + b) over scalar inputs.
//
// The weighted sum is recorded as b + w0*x0 + w1*x1 + ... with one addition
// per input.
type Neuron struct {
	w []*Parameter
	b *Parameter
}

// NewNeuron creates a neuron with nin weights and a bias, all drawn from
// init. Parameters are named name.w0, name.w1, ..., name.b.
func NewNeuron(name string, nin int, init Initializer) *Neuron {
	w := make([]*Parameter, nin)
	for i := range w {
		w[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), init())
	}
	return &Neuron{
		w: w,
		b: NewParameter(name+".b", init()),
	}
}

// Call applies the neuron to x and returns its single output.
func (n *Neuron) Call(s *Scope, x []autodiff.Value) (autodiff.Value, error) {
	if len(x) != len(n.w) {
		return autodiff.Value{}, fmt.Errorf("neuron %s: %w: %d weights, %d inputs", n.b.Name(), ErrInputSize, len(n.w), len(x))
	}

	products := make([]autodiff.Value, len(x))
	for i, wi := range n.w {
		products[i] = s.Bind(wi).Mul(x[i])
	}
	out := autodiff.Sum(s.Bind(n.b), products...).Tanh()

	if err := s.Graph().Err(); err != nil {
		return autodiff.Value{}, err
	}
	return out, nil
}

// Forward implements Module.
func (n *Neuron) Forward(s *Scope, x []autodiff.Value) ([]autodiff.Value, error) {
	out, err := n.Call(s, x)
	if err != nil {
		return nil, err
	}
	return []autodiff.Value{out}, nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return n.w
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.b
}
