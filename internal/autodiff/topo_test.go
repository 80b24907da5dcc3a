package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

func TestTopological_OperandsPrecedeConsumers(t *testing.T) {
	g := autodiff.NewGraph()
	_, _, _, _, _, _, l := buildExpression(g)
	unrelated := g.Leaf(42)

	order, err := l.Topological()
	require.NoError(t, err)
	require.Len(t, order, 7)
	assert.Equal(t, l, order[len(order)-1])
	assert.NotContains(t, order, unrelated)

	pos := make(map[autodiff.Value]int, len(order))
	for i, v := range order {
		_, dup := pos[v]
		require.False(t, dup, "node %v emitted twice", v)
		pos[v] = i
	}
	for _, v := range order {
		for _, op := range v.Operands() {
			assert.Less(t, pos[op], pos[v], "operand %v after consumer %v", op, v)
		}
	}
}

func TestTopological_DeepChain(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Leaf(0.5)
	v := x
	for range 10000 {
		v = v.Add(0)
	}

	order, err := v.Topological()
	require.NoError(t, err)
	// x, then one constant leaf and one sum per step.
	assert.Len(t, order, 1+2*10000)

	require.NoError(t, v.Backward())
	assert.Equal(t, 1.0, x.Grad())
}

func TestTopological_InvalidRoot(t *testing.T) {
	var v autodiff.Value
	_, err := v.Topological()
	assert.ErrorIs(t, err, autodiff.ErrInvalidValue)
}
