package cli

import (
	"fmt"

	"github.com/lacquerai/calc/internal/report"
	"github.com/lacquerai/calc/internal/style"
	"github.com/spf13/cobra"
)

// schemaCmd prints the JSON schema of the json/yaml result document
var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Output the JSON schema of the result document",
	Long:   `Output the JSON schema of the document printed with --output json or --output yaml.`,
	Hidden: true,
	Args:   cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := report.Schema()
		if err != nil {
			style.Error(cmd.ErrOrStderr(), fmt.Sprintf("Error generating schema: %v", err))
			exit(ExitError)
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
