package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// numericalGradient computes df/dx with central finite differences.
func numericalGradient(f func(float64) float64, x, eps float64) float64 {
	return (f(x+eps) - f(x-eps)) / (2 * eps)
}

// checkGradient builds build(x) in a fresh graph, runs Backward and compares
// the gradient of x against the numerical one.
func checkGradient(t *testing.T, build func(x autodiff.Value) autodiff.Value, at float64) {
	t.Helper()

	g := autodiff.NewGraph()
	x := g.Leaf(at)
	out := build(x)
	require.NoError(t, g.Err())
	require.NoError(t, out.Backward())

	f := func(v float64) float64 {
		return build(autodiff.NewGraph().Leaf(v)).Data()
	}
	want := numericalGradient(f, at, 1e-5)

	assert.InDelta(t, want, x.Grad(), 1e-6, "autodiff %g, numerical %g", x.Grad(), want)
}

func TestNumericalGradient_Mul(t *testing.T) {
	const b = -3.0
	checkGradient(t, func(x autodiff.Value) autodiff.Value {
		return x.Mul(b)
	}, 2.0)
}

func TestNumericalGradient_Polynomial(t *testing.T) {
	// f(x) = x³ - 2x² + x
	checkGradient(t, func(x autodiff.Value) autodiff.Value {
		return x.Pow(3).Sub(x.Pow(2).Mul(2)).Add(x)
	}, 2.0)
}

func TestNumericalGradient_Division(t *testing.T) {
	// f(x) = 1/x
	checkGradient(t, func(x autodiff.Value) autodiff.Value {
		one := x.Graph().Leaf(1)
		return one.Div(x)
	}, 2.0)
}

func TestNumericalGradient_ExpTanh(t *testing.T) {
	// f(x) = tanh(exp(x) * x)
	checkGradient(t, func(x autodiff.Value) autodiff.Value {
		return x.Exp().Mul(x).Tanh()
	}, 0.3)
}

func TestNumericalGradient_NodeExponent(t *testing.T) {
	// f(x) = 1.7^x, differentiated through the exponent
	checkGradient(t, func(x autodiff.Value) autodiff.Value {
		base := x.Graph().Leaf(1.7)
		return base.Pow(x)
	}, 1.2)
}

func TestNumericalGradient_Neuron(t *testing.T) {
	// f(w) = tanh(w*x1 + 0*x2 + b), x1 = 2, b = 6.88
	checkGradient(t, func(w autodiff.Value) autodiff.Value {
		g := w.Graph()
		x1 := g.Leaf(2)
		x2 := g.Leaf(0)
		w2 := g.Leaf(1)
		b := g.Leaf(6.8813735870195432)
		return autodiff.Sum(b, w.Mul(x1), w2.Mul(x2)).Tanh()
	}, -3.0)
}

func TestNumericalGradient_Activations(t *testing.T) {
	// f(x) = log(sigmoid(x) + relu(x)²)
	for _, at := range []float64{-0.7, 0.4, 1.3} {
		checkGradient(t, func(x autodiff.Value) autodiff.Value {
			return x.Sigmoid().Add(x.ReLU().Pow(2)).Log()
		}, at)
	}
}
