package ops

import "errors"

// Domain errors.
var (
	// ErrDomain is returned when an operation or its derivative is undefined
	// for the given operand, e.g. ln(a) with a <= 0.
	ErrDomain = errors.New("value outside operation domain")

	// ErrDivisionByZero is returned for a zero divisor, including a zero base
	// raised to a negative power.
	ErrDivisionByZero = errors.New("division by zero")
)

// ErrUnknownKind is returned for an operation tag outside the known set.
var ErrUnknownKind = errors.New("unknown operation kind")
