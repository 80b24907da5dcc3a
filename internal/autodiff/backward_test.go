package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// buildExpression records L = (a*b + c) * f.
func buildExpression(g *autodiff.Graph) (a, b, c, f, e, d, l autodiff.Value) {
	a = g.Leaf(2.0).SetLabel("a")
	b = g.Leaf(-3.0).SetLabel("b")
	c = g.Leaf(10.0).SetLabel("c")
	f = g.Leaf(-2.0).SetLabel("f")
	e = a.Mul(b).SetLabel("e")
	d = e.Add(c).SetLabel("d")
	l = d.Mul(f).SetLabel("L")
	return
}

func TestBackward_Expression(t *testing.T) {
	g := autodiff.NewGraph()
	a, b, c, f, e, d, l := buildExpression(g)

	assert.Equal(t, -6.0, e.Data())
	assert.Equal(t, 4.0, d.Data())
	assert.Equal(t, -8.0, l.Data())

	require.NoError(t, l.Backward())

	assert.Equal(t, 1.0, l.Grad())
	assert.Equal(t, 4.0, f.Grad())
	assert.Equal(t, -2.0, d.Grad())
	assert.Equal(t, -2.0, e.Grad())
	assert.Equal(t, -2.0, c.Grad())
	assert.Equal(t, 6.0, a.Grad())
	assert.Equal(t, -4.0, b.Grad())
}

func TestBackward_FanOut(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Leaf(3)
	c := a.Add(a)

	order, err := c.Topological()
	require.NoError(t, err)
	assert.Len(t, order, 2, "a is visited once")

	require.NoError(t, c.Backward())
	assert.Equal(t, 2.0, a.Grad())
}

func TestBackward_FanOutAcrossConsumers(t *testing.T) {
	// f = a*b + a, df/da = b + 1
	g := autodiff.NewGraph()
	a := g.Leaf(-2)
	b := g.Leaf(3)
	f := a.Mul(b).Add(a)

	require.NoError(t, f.Backward())
	assert.Equal(t, 4.0, a.Grad())
	assert.Equal(t, -2.0, b.Grad())
}

func TestBackward_StaleGradient(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Leaf(2)
	b := g.Leaf(5)
	out := a.Mul(b)

	require.NoError(t, out.Backward())
	assert.Equal(t, 5.0, a.Grad())

	err := out.Backward()
	assert.ErrorIs(t, err, autodiff.ErrStaleGradient)
	assert.Equal(t, 5.0, a.Grad(), "failed pass must not accumulate")

	require.NoError(t, out.ZeroGrad())
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 0.0, out.Grad())

	require.NoError(t, out.Backward())
	assert.Equal(t, 5.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

func TestBackward_StaleGradientFromOverlappingRoot(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(1)
	y := x.Mul(2)
	z := x.Add(3)

	require.NoError(t, y.Backward())
	assert.ErrorIs(t, z.Backward(), autodiff.ErrStaleGradient)
}

func TestBackward_IndependentGraphs(t *testing.T) {
	g1 := autodiff.NewGraph()
	a1, b1, c1, f1, e1, d1, l1 := buildExpression(g1)

	g2 := autodiff.NewGraph()
	a2, b2, c2, f2, e2, d2, l2 := buildExpression(g2)

	first := []autodiff.Value{a1, b1, c1, f1, e1, d1, l1}
	second := []autodiff.Value{a2, b2, c2, f2, e2, d2, l2}
	for i := range first {
		assert.Equal(t, first[i].Data(), second[i].Data())
	}

	require.NoError(t, l1.Backward())
	for _, v := range second {
		assert.Equal(t, 0.0, v.Grad(), "gradients must not leak across graphs")
	}

	require.NoError(t, l2.Backward())
	for i := range first {
		assert.Equal(t, first[i].Grad(), second[i].Grad())
	}
}

func TestBackward_AfterReset(t *testing.T) {
	g := autodiff.NewGraph()
	_, _, _, _, _, _, l := buildExpression(g)
	require.NoError(t, l.Backward())

	g.Reset()
	assert.ErrorIs(t, l.Backward(), autodiff.ErrStaleValue)

	a, _, _, _, _, _, l2 := buildExpression(g)
	require.NoError(t, l2.Backward())
	assert.Equal(t, 6.0, a.Grad())
}

func TestBackward_Leaf(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(7)

	require.NoError(t, x.Backward())
	assert.Equal(t, 1.0, x.Grad())
}

func TestBackward_ReportsForwardError(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(1)
	ok := x.Mul(2)
	_ = x.Div(0)

	assert.ErrorIs(t, ok.Backward(), autodiff.ErrDivisionByZero)
}
