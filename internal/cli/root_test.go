package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lacquerai/calc/internal/testhelper"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd

	testCmd := &cobra.Command{
		Use:   "calc",
		Short: "Test command",
		Run: func(cmd *cobra.Command, args []string) {
			// Do nothing
		},
	}
	testCmd.SetArgs([]string{})

	rootCmd = testCmd
	defer func() { rootCmd = originalRootCmd }()

	err := Execute()
	assert.NoError(t, err)
}

func TestGetVersion(t *testing.T) {
	version := getVersion()
	assert.Contains(t, version, "dev")
	assert.Contains(t, version, "unknown")
}

func TestInitLogging(t *testing.T) {
	require.NotPanics(t, func() {
		initLogging()
	})
}

func TestInitConfig(t *testing.T) {
	require.NotPanics(t, func() {
		initConfig()
	})
}

// executeCommand runs a copy of root with the given stdin and args and
// returns everything written to stdout and stderr along with the exit code
// passed to exit, if any.
func executeCommand(t *testing.T, root *cobra.Command, stdin string, args ...string) (output string, code int, err error) {
	t.Helper()
	resetFlags(t, root)

	cmd := &cobra.Command{
		Use:   root.Use,
		Short: root.Short,
		Long:  root.Long,
		Args:  root.Args,
		Run:   root.Run,
	}

	for _, subCmd := range root.Commands() {
		cmd.AddCommand(subCmd)
	}

	cmd.Flags().AddFlagSet(root.Flags())
	cmd.PersistentFlags().AddFlagSet(root.PersistentFlags())

	originalExit := exit
	code = ExitOK
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = originalExit })

	buf := new(bytes.Buffer)
	var in io.Reader = strings.NewReader(stdin)
	cmd.SetIn(in)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return buf.String(), code, err
}

// resetFlags puts the shared persistent flags back to their defaults once the
// test finishes, since viper reads them through the global binding.
func resetFlags(t *testing.T, root *cobra.Command) {
	t.Helper()
	t.Cleanup(func() {
		for _, name := range []string{"output", "verbose", "quiet", "log-level"} {
			f := root.PersistentFlags().Lookup(name)
			if f == nil {
				continue
			}
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

func TestRootCommand_Help(t *testing.T) {
	output, _, err := executeCommand(t, rootCmd, "", "--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "calc reads two integers and an operator")
	assert.Contains(t, output, "Available Commands:")
}

func TestGlobalFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "string", flag.Value.Type())

	flag = rootCmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, flag)
	assert.Equal(t, "disabled", flag.DefValue)

	flag = rootCmd.PersistentFlags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)

	flag = rootCmd.PersistentFlags().Lookup("quiet")
	require.NotNil(t, flag)
	assert.Equal(t, "bool", flag.Value.Type())

	flag = rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "bool", flag.Value.Type())
}

func TestCommandAvailability(t *testing.T) {
	for _, cmdName := range []string{"version", "schema"} {
		cmd, _, err := rootCmd.Find([]string{cmdName})
		assert.NoError(t, err, "Command %s should be available", cmdName)
		assert.Equal(t, cmdName, cmd.Name(), "Command name should match")
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand(t, rootCmd, "", "6", "3", "+")
	assert.Error(t, err)
}
