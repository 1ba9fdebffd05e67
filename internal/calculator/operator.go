package calculator

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Operator selects which arithmetic operation to perform
type Operator rune

const (
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

// Operators returns the supported operators in dispatch order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// ParseOperator converts a single-character token into an Operator.
func ParseOperator(token string) (Operator, error) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, token)
	}

	r, _ := utf8.DecodeRuneInString(token)
	op := Operator(r)
	if !op.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, token)
	}
	return op, nil
}

func (op Operator) Valid() bool {
	return slices.Contains(Operators(), op)
}

// Name returns the operation name, e.g. "add" for '+'.
func (op Operator) Name() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

func (op Operator) String() string {
	return string(op)
}
