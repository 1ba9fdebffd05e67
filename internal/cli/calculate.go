package cli

import (
	"github.com/lacquerai/calc/internal/execcontext"
	"github.com/lacquerai/calc/internal/input"
	"github.com/lacquerai/calc/internal/report"
	"github.com/lacquerai/calc/internal/style"
)

// Exit codes
const (
	ExitOK           = 0
	ExitError        = 1
	ExitDivideByZero = 255
)

// calculate reads one problem from rc.StdIn and renders its result to
// rc.StdOut. A divide by zero is rendered like a result and then returned.
func calculate(rc execcontext.RunContext, format string, verbose bool) error {
	if err := rc.Context.Err(); err != nil {
		return err
	}

	problem, err := input.Read(rc.StdIn)
	if err != nil {
		return err
	}

	value, solveErr := problem.Solve()
	if solveErr != nil && !report.IsDivideByZero(solveErr) {
		return solveErr
	}

	result := report.New(problem, value, solveErr)
	if err := report.Render(rc, format, result, verbose); err != nil {
		return err
	}

	rc.Logger.Debug().
		Str("problem", problem.String()).
		Str("operation", result.Operation).
		Bool("failed", result.Failed()).
		Msg("Calculation finished")

	return solveErr
}

// exitCode maps the outcome of calculate to a process exit status, printing
// any error that has not already been written to stdout.
func exitCode(rc execcontext.RunContext, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case report.IsDivideByZero(err):
		return ExitDivideByZero
	default:
		style.Error(rc.StdErr, err.Error())
		return ExitError
	}
}
