// Package cli provides the command-line interface of gmdoc.
package cli

import "github.com/spf13/cobra"

// Execute creates and runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Running the root command without
// a subcommand generates the document.
func NewRootCommand() *cobra.Command {
	var opts GenerateOptions

	rootCmd := &cobra.Command{
		Use:   "gmdoc",
		Short: "Extract the GameMaker built-in surface from GmlSpec.xml",
		Long: `gmdoc reads the GmlSpec.xml language specification and the manual's
keyword table and prints every built-in function, variable and constant
as a single JSON or YAML document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &opts)
		},
	}
	bindGenerateFlags(rootCmd, &opts)

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newValidateCommand())
	return rootCmd
}
