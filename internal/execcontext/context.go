package execcontext

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RunContext carries the streams and context for a single calculation.
type RunContext struct {
	Context context.Context
	StdIn   io.Reader
	StdOut  io.Writer
	StdErr  io.Writer
	Logger  zerolog.Logger
}

// New returns a RunContext bound to the given streams. Nil streams fall back
// to the process streams.
func New(ctx context.Context, in io.Reader, out, errOut io.Writer) RunContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	return RunContext{
		Context: ctx,
		StdIn:   in,
		StdOut:  out,
		StdErr:  errOut,
		Logger:  log.Logger,
	}
}

// Write sends output to StdOut so a RunContext can be handed to renderers
// directly.
func (rc RunContext) Write(p []byte) (n int, err error) {
	return rc.StdOut.Write(p)
}
