package nn

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("layers.0", 3, 4, init),
//	    nn.NewLayer("layers.1", 4, 1, init),
//	)
//
//	out, err := model.Forward(scope, scope.Inputs(x))
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// NewMLP creates a multi-layer perceptron of tanh layers with nin inputs and
// layer widths nouts. Layers are named layers.0, layers.1, ...
func NewMLP(nin int, nouts []int, init Initializer) *Sequential {
	s := NewSequential()
	for i, nout := range nouts {
		s.Add(NewLayer(fmt.Sprintf("layers.%d", i), nin, nout, init))
		nin = nout
	}
	return s
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(scope *Scope, x []autodiff.Value) ([]autodiff.Value, error) {
	out := x
	for i, m := range s.modules {
		var err error
		out, err = m.Forward(scope, out)
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", i, err)
		}
	}
	return out, nil
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(m Module) {
	s.modules = append(s.modules, m)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
