package execcontext

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	//nolint:staticcheck // nil context exercises the fallback
	rc := New(nil, nil, nil, nil)

	assert.NotNil(t, rc.Context)
	assert.Equal(t, os.Stdin, rc.StdIn)
	assert.Equal(t, os.Stdout, rc.StdOut)
	assert.Equal(t, os.Stderr, rc.StdErr)
}

func TestRunContext_Writes(t *testing.T) {
	var out, errOut bytes.Buffer
	rc := New(context.Background(), strings.NewReader("1 2 +"), &out, &errOut)

	fmt.Fprintf(rc, "%d\n", 3)
	_, err := rc.Write([]byte("done\n"))

	assert.NoError(t, err)
	assert.Equal(t, "3\ndone\n", out.String())
	assert.Empty(t, errOut.String())
}
