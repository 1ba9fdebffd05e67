package calculator

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	// ErrDivideByZero is returned when dividing by a zero operand.
	ErrDivideByZero = errors.New("Cannot divide by 0!")
	// ErrUnknownOperator is returned for any operator other than + - * /.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b truncated toward zero.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Apply dispatches to exactly one of the four operations.
func Apply(a, b int, op Operator) (int, error) {
	log.Debug().
		Int("a", a).
		Int("b", b).
		Str("operator", op.String()).
		Msg("Applying operation")

	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
	}
}
