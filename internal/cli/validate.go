package cli

import (
	"fmt"

	"github.com/example/gmdoc/internal/validator"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a generated JSON or YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := validator.ValidateFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %d functions (%d parameters)\n", summary.Functions, summary.Parameters)
			fmt.Fprintf(out, "✓ %d variables\n", summary.Variables)
			fmt.Fprintf(out, "✓ %d constants\n", summary.Constants)
			fmt.Fprintf(out, "✓ %d documentation links\n", summary.Linked)
			return nil
		},
	}
}
