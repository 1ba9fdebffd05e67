package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/lacquerai/calc/internal/calculator"
	"github.com/lacquerai/calc/internal/input"
	"github.com/lacquerai/calc/internal/style"
	"github.com/stoewer/go-strcase"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Result is the document printed for one calculation
type Result struct {
	// First operand
	A int `json:"a" yaml:"a" jsonschema:"description=First operand"`
	// Second operand
	B int `json:"b" yaml:"b" jsonschema:"description=Second operand"`
	// Operator character
	Operator string `json:"operator" yaml:"operator" jsonschema:"enum=+,enum=-,enum=*,enum=/"`
	// Operation name
	Operation string `json:"operation" yaml:"operation" jsonschema:"enum=add,enum=subtract,enum=multiply,enum=divide"`
	// Result of the operation, absent when the operation failed
	Result *int `json:"result,omitempty" yaml:"result,omitempty"`
	// Error message, present only when the operation failed
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// New builds the result document for a solved (or failed) problem.
func New(p input.Problem, value int, err error) Result {
	r := Result{
		A:         p.A,
		B:         p.B,
		Operator:  p.Operator.String(),
		Operation: p.Operator.Name(),
	}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Result = &value
	return r
}

// Failed reports whether the calculation produced no result.
func (r Result) Failed() bool {
	return r.Result == nil
}

// Render writes the result in the given format.
func Render(w io.Writer, format string, r Result, verbose bool) error {
	switch format {
	case FormatJSON:
		style.PrintJSON(w, r)
	case FormatYAML:
		style.PrintYAML(w, r)
	case FormatText, "":
		renderText(w, r, verbose)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}

func renderText(w io.Writer, r Result, verbose bool) {
	if r.Failed() {
		fmt.Fprintln(w, r.Error)
		return
	}
	if verbose {
		fmt.Fprintf(w, "%d %s %d = %d\n", r.A, r.Operator, r.B, *r.Result)
		return
	}
	fmt.Fprintln(w, *r.Result)
}

// IsDivideByZero reports whether err is the divide-by-zero failure.
func IsDivideByZero(err error) bool {
	return errors.Is(err, calculator.ErrDivideByZero)
}

// Schema returns the JSON schema of Result.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		KeyNamer: strcase.SnakeCase,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct: true,
	}

	schema := r.Reflect(&Result{})
	schema.Title = "calc result"
	schema.Description = "Document printed by calc with --output json or --output yaml."
	return json.MarshalIndent(schema, "", "  ")
}
