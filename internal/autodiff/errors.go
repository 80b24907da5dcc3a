package autodiff

import (
	"errors"

	"github.com/born-ml/nodegrad/internal/autodiff/ops"
)

// Domain errors raised by the operations themselves.
var (
	// ErrDomain is returned when an operation or its derivative is undefined,
	// e.g. differentiating a^b with respect to b when a <= 0.
	ErrDomain = ops.ErrDomain

	// ErrDivisionByZero is returned for a zero divisor or 0 raised to a
	// negative power.
	ErrDivisionByZero = ops.ErrDivisionByZero
)

// Operand errors.
var (
	// ErrInvalidOperand is returned when an operand is neither a Value nor a
	// number.
	ErrInvalidOperand = errors.New("operand is neither a Value nor a number")

	// ErrGraphMismatch is returned when operands belong to different graphs.
	ErrGraphMismatch = errors.New("operands belong to different graphs")

	// ErrInvalidValue is returned for the zero Value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrStaleValue is returned for a Value recorded before Graph.Reset.
	ErrStaleValue = errors.New("value belongs to a reset graph")
)

// ErrStaleGradient is returned by Backward when a reachable node still holds
// gradient from an earlier pass. Call ZeroGrad or rebuild the graph first.
var ErrStaleGradient = errors.New("gradient not zeroed since previous backward pass")
