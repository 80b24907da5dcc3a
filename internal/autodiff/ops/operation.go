// Package ops defines the differentiable operations of the scalar engine.
//
// Each operation is identified by a Kind tag. Forward computes the output
// data of an operation and Backward maps the output gradient to the
// contributions that must be added into each operand gradient:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Neg: d(-a)/da = -1
//   - PowConst: d(a^k)/da = k * a^(k-1)
//   - PowNode: d(a^b)/da = b * a^(b-1), d(a^b)/db = a^b * ln(a)
//   - Div: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - Exp: d(exp(a))/da = exp(a)
//   - Tanh: d(tanh(a))/da = 1 - tanh²(a)
//   - ReLU: d(max(0, a))/da = 1 if a > 0, else 0
//   - Sigmoid: dσ(a)/da = σ(a) * (1 - σ(a))
//   - Log: d(ln(a))/da = 1/a
//
// The package works on plain float64 values and knows nothing about graphs.
package ops

// Kind tags the operation that produced a node.
type Kind uint8

// Supported operation kinds.
const (
	Leaf Kind = iota
	Add
	Mul
	Neg
	PowConst
	PowNode
	Div
	Exp
	Tanh
	ReLU
	Sigmoid
	Log
)

var kindNames = [...]string{
	Leaf:     "",
	Add:      "+",
	Mul:      "*",
	Neg:      "neg",
	PowConst: "**",
	PowNode:  "**",
	Div:      "/",
	Exp:      "exp",
	Tanh:     "tanh",
	ReLU:     "relu",
	Sigmoid:  "sigmoid",
	Log:      "log",
}

// String returns the short operator symbol used in graph renderings.
// Leaves have an empty symbol.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

var kindOpNames = [...]string{
	Leaf:     "leaf",
	Add:      "add",
	Mul:      "mul",
	Neg:      "neg",
	PowConst: "pow",
	PowNode:  "pow",
	Div:      "div",
	Exp:      "exp",
	Tanh:     "tanh",
	ReLU:     "relu",
	Sigmoid:  "sigmoid",
	Log:      "log",
}

// Name returns the lowercase operation name used in error messages.
func (k Kind) Name() string {
	if int(k) < len(kindOpNames) {
		return kindOpNames[k]
	}
	return "unknown"
}

// Arity returns the number of node operands an operation consumes.
// PowConst has one: its exponent is a constant, not a node.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Neg, PowConst, Exp, Tanh, ReLU, Sigmoid, Log:
		return 1
	default:
		return 2
	}
}

// Forward computes the output data of k applied to a and b.
//
// Unary operations ignore b, except PowConst which reads its constant
// exponent from b. Returns ErrDomain or ErrDivisionByZero when the result
// would be NaN or infinite because the inputs lie outside the operation's
// domain.
func Forward(k Kind, a, b float64) (float64, error) {
	switch k {
	case Leaf:
		return a, nil
	case Add:
		return addForward(a, b), nil
	case Mul:
		return mulForward(a, b), nil
	case Neg:
		return negForward(a), nil
	case PowConst, PowNode:
		return powForward(a, b)
	case Div:
		return divForward(a, b)
	case Exp:
		return expForward(a), nil
	case Tanh:
		return tanhForward(a), nil
	case ReLU:
		return reluForward(a), nil
	case Sigmoid:
		return sigmoidForward(a), nil
	case Log:
		return logForward(a)
	default:
		return 0, ErrUnknownKind
	}
}

// Backward applies the local gradient rule of k.
//
// a and b are the operand data (the constant exponent for PowConst), out is
// the output data and up is the accumulated gradient of the output. The
// returned contributions must be added into the operand gradients; db is
// always 0 for unary kinds.
func Backward(k Kind, a, b, out, up float64) (da, db float64, err error) {
	switch k {
	case Leaf:
		return 0, 0, nil
	case Add:
		da, db = addBackward(up)
	case Mul:
		da, db = mulBackward(a, b, up)
	case Neg:
		da = negBackward(up)
	case PowConst:
		da, err = powConstBackward(a, b, up)
		if err != nil {
			return 0, 0, err
		}
	case PowNode:
		return powNodeBackward(a, b, out, up)
	case Div:
		return divBackward(a, b, up)
	case Exp:
		da = expBackward(out, up)
	case Tanh:
		da = tanhBackward(out, up)
	case ReLU:
		da = reluBackward(out, up)
	case Sigmoid:
		da = sigmoidBackward(out, up)
	case Log:
		da = logBackward(a, up)
	default:
		return 0, 0, ErrUnknownKind
	}
	return da, db, nil
}

// CheckBackward reports whether the local rule of k is defined at the given
// operand data, without computing it.
func CheckBackward(k Kind, a, b float64) error {
	switch k {
	case PowConst:
		return checkConstBase(a, b)
	case PowNode:
		return checkLogBase(a)
	case Div:
		return checkDivisor(b)
	default:
		return nil
	}
}
