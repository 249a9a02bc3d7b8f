package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pxtools/pkg/batch"
	"pxtools/pkg/whitespace"
)

// sourceExtensions are the text and C/C++ source files that get normalized.
var sourceExtensions = batch.NewExtensionSet(".txt", ".c", ".cpp", ".cxx", ".h", ".hpp", ".hxx", ".txx")

type whitespaceOptions struct {
	Batch         batchOptions
	TabWidth      int `validate:"min=1,max=16"`
	IncludeBinary bool
}

func newStripWhitespaceCommand(a *app) *cobra.Command {
	opts := &whitespaceOptions{}

	cmd := &cobra.Command{
		Use:   "strip-whitespace [flags] pattern...",
		Short: "Remove trailing whitespace and expand tabs in place",
		Long: fmt.Sprintf(`Rewrite every matched file in place with trailing whitespace removed
from each line and tabs expanded to the tab width. Every line of the result,
the last one included, ends with a newline. Allowed extensions: %s.

Binary files are skipped unless --include-binary is given. A read or write
error stops the run at the failing file.

Examples:
  pxtools strip-whitespace '*.cxx' '*.h'
  pxtools strip-whitespace --tab-width 4 --exclude 'third_party/' 'src/*/*.txx'`, sourceExtensions),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			p := &batch.Processor{
				Extensions: sourceExtensions,
				Action:     whitespace.NewRewriter(opts.TabWidth, opts.Batch.DryRun, a.logger),
			}
			if !opts.IncludeBinary {
				p.Accept = whitespace.AcceptText
			}
			return a.runBatch(cmd, &opts.Batch, p, args)
		},
	}

	opts.Batch.bindFlags(cmd)
	cmd.Flags().IntVar(&opts.TabWidth, "tab-width", whitespace.DefaultTabWidth, "Tab stop distance in columns")
	cmd.Flags().BoolVar(&opts.IncludeBinary, "include-binary", false, "Also rewrite files that look binary")

	return cmd
}
