package autodiff

import "fmt"

// operand is a resolved right-hand argument: either a node of the receiver's
// graph or a numeric constant that has not been recorded yet.
type operand struct {
	v        Value
	data     float64
	constant bool
}

// resolve turns x into an operand of g without recording anything.
func (g *Graph) resolve(x any) (operand, error) {
	if v, ok := x.(Value); ok {
		if err := v.check(); err != nil {
			return operand{}, err
		}
		if v.g != g {
			return operand{}, ErrGraphMismatch
		}
		return operand{v: v, data: v.node().data}, nil
	}

	c, ok := toFloat(x)
	if !ok {
		return operand{}, fmt.Errorf("%w: %T", ErrInvalidOperand, x)
	}
	return operand{data: c, constant: true}, nil
}

// record returns the arena index of o, recording a constant as a leaf.
func (g *Graph) record(o operand) int32 {
	if o.constant {
		return g.Leaf(o.data).id
	}
	return o.v.id
}

func toFloat(x any) (float64, bool) {
	switch x := x.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
