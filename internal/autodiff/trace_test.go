package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

func TestTrace(t *testing.T) {
	g := autodiff.NewGraph()
	a, b, c, f, e, d, l := buildExpression(g)

	tr, err := l.Trace()
	require.NoError(t, err)

	assert.ElementsMatch(t, []autodiff.Value{a, b, c, f, e, d, l}, tr.Nodes)
	assert.ElementsMatch(t, []autodiff.Edge{
		{From: a, To: e},
		{From: b, To: e},
		{From: e, To: d},
		{From: c, To: d},
		{From: d, To: l},
		{From: f, To: l},
	}, tr.Edges)

	for _, v := range tr.Nodes {
		assert.Equal(t, 0.0, v.Grad(), "trace must not touch gradients")
	}
}

func TestTrace_SelfOperandEdgeOnce(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.Leaf(1)
	c := a.Add(a)

	tr, err := c.Trace()
	require.NoError(t, err)
	assert.Equal(t, []autodiff.Edge{{From: a, To: c}}, tr.Edges)
}
