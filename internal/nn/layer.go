package nn

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// Layer applies nout independent neurons to the same inputs.
//
// Every input node feeds every neuron, so each input has fan-out nout.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each, named
// name.n0, name.n1, ...
func NewLayer(name string, nin, nout int, init Initializer) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.n%d", name, i), nin, init)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(s *Scope, x []autodiff.Value) ([]autodiff.Value, error) {
	outs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Call(s, x)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return outs, nil
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}
