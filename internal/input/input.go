package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lacquerai/calc/internal/calculator"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingToken   = errors.New("missing input")
	ErrInvalidOperand = errors.New("invalid operand")
)

// Problem is the parsed triple read from input
type Problem struct {
	A        int
	B        int
	Operator calculator.Operator
}

// Solve applies the problem's operator to its operands.
func (p Problem) Solve() (int, error) {
	return calculator.Apply(p.A, p.B, p.Operator)
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Operator, p.B)
}

// Read reads operand A, operand B and the operator, in that order, as
// whitespace-separated tokens. Anything after the operator is ignored.
func Read(r io.Reader) (Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var p Problem
	var err error

	if p.A, err = readOperand(scanner, "first operand"); err != nil {
		return Problem{}, err
	}
	if p.B, err = readOperand(scanner, "second operand"); err != nil {
		return Problem{}, err
	}

	token, err := next(scanner, "operator")
	if err != nil {
		return Problem{}, err
	}
	if p.Operator, err = calculator.ParseOperator(token); err != nil {
		return Problem{}, err
	}

	log.Debug().Str("problem", p.String()).Msg("Read problem from input")
	return p, nil
}

func readOperand(scanner *bufio.Scanner, what string) (int, error) {
	token, err := next(scanner, what)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidOperand, what, token)
	}
	return n, nil
}

func next(scanner *bufio.Scanner, what string) (string, error) {
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", what, err)
	}
	return "", fmt.Errorf("%w: expected %s", ErrMissingToken, what)
}
