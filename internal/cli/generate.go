package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/gmdoc/internal/config"
	"github.com/example/gmdoc/internal/extractor"
	"github.com/example/gmdoc/internal/keywords"
	"github.com/example/gmdoc/internal/manual"
	"github.com/example/gmdoc/internal/output"
	"github.com/example/gmdoc/internal/xmltree"
	"github.com/spf13/cobra"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	Config config.Config
	Quiet  bool
}

func newGenerateCommand() *cobra.Command {
	var opts GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Extract GmlSpec.xml into a JSON or YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &opts)
		},
	}
	bindGenerateFlags(cmd, &opts)
	return cmd
}

func bindGenerateFlags(cmd *cobra.Command, opts *GenerateOptions) {
	cfg := &opts.Config
	cmd.Flags().StringVarP(&cfg.SpecPath, "spec", "s", config.DefaultSpec, "Path to GmlSpec.xml")
	cmd.Flags().StringVarP(&cfg.KeywordsPath, "keywords", "k", config.DefaultKeywords, "Path to the helpdocs keyword table (JSON)")
	cmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", config.DefaultOutput, "Path to output file or '-' for stdout")
	cmd.Flags().StringVarP(&cfg.Format, "format", "f", config.DefaultFormat, "Output format (json or yaml)")
	cmd.Flags().BoolVar(&cfg.Sort, "sort", false, "Sort functions, variables and constants by name")
	cmd.Flags().StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to .gmdoc.yml config file")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not print a summary to stderr")
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	flags := cmd.Flags()
	explicit := config.Set{
		SpecPath:     flags.Changed("spec"),
		KeywordsPath: flags.Changed("keywords"),
		OutputPath:   flags.Changed("output"),
		Format:       flags.Changed("format"),
		Sort:         flags.Changed("sort"),
	}
	cfg := opts.Config
	if err := config.Resolve(&cfg, explicit); err != nil {
		return err
	}

	program, err := Generate(cfg.SpecPath, cfg.KeywordsPath)
	if err != nil {
		return err
	}
	if cfg.Sort {
		program.SortByName()
	}

	if err := output.WriteFile(cfg.OutputPath, cfg.Format, program, cmd.OutOrStdout()); err != nil {
		return err
	}

	if !opts.Quiet {
		functions, variables, constants := program.Counts()
		stderr := cmd.ErrOrStderr()
		if cfg.OutputPath != output.Stdout {
			fmt.Fprintf(stderr, "Document generated successfully: %s\n", cfg.OutputPath)
		}
		fmt.Fprintf(stderr, "Summary: %d functions, %d variables, %d constants\n", functions, variables, constants)
	}
	return nil
}

// Generate loads the keyword table and spec document and extracts the
// Program from them.
func Generate(specPath, keywordsPath string) (*manual.Program, error) {
	table, err := keywords.LoadFile(keywordsPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(specPath))
	if err != nil {
		return nil, fmt.Errorf("open spec: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := xmltree.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse spec %s: %w", specPath, err)
	}

	program, err := extractor.Extract(doc, table)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", specPath, err)
	}
	return program, nil
}
