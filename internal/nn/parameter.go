package nn

// Parameter is a trainable scalar, such as one weight or one bias.
//
// Its data survives across graphs; every forward pass binds it into the
// current graph as a leaf (see Scope.Bind). The gradient is the sum of the
// leaf gradients folded in by Scope.Accumulate since the last ZeroGrad.
type Parameter struct {
	name string
	data float64
	grad float64
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name: name,
		data: data,
	}
}

// Name returns the parameter name (e.g. "layers.0.n1.w2").
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current value.
func (p *Parameter) Data() float64 {
	return p.data
}

// SetData replaces the current value. Optimizers use it to apply updates.
func (p *Parameter) SetData(v float64) {
	p.data = v
}

// Grad returns the accumulated gradient.
func (p *Parameter) Grad() float64 {
	return p.grad
}

// AddGrad adds g to the accumulated gradient.
func (p *Parameter) AddGrad(g float64) {
	p.grad += g
}

// ZeroGrad clears the gradient.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.grad = 0
}
