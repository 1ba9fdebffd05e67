package testhelper

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// init disables logging for tests unless CALC_TEST_LOG is set
func init() {
	if isTesting() && os.Getenv("CALC_TEST_LOG") == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

// isTesting returns true if we're currently running tests
func isTesting() bool {
	return testing.Testing() || os.Getenv("GO_TEST") != ""
}
