package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pxtools/pkg/batch"
	"pxtools/pkg/ignore"
)

// batchOptions are the flags every batch subcommand accepts.
type batchOptions struct {
	Exclude     []string
	ExcludeFrom string `validate:"omitempty,file"`
	DryRun      bool
}

func (o *batchOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&o.Exclude, "exclude", nil, "Drop matches of this gitignore-style pattern (repeatable)")
	cmd.Flags().StringVar(&o.ExcludeFrom, "exclude-from", "", "Read exclude patterns from this file")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "Show what would be done without changing any file")
}

// excluder compiles the exclude flags. It returns nil when there is nothing
// to exclude.
func (o *batchOptions) excluder(logger *zap.Logger) (batch.Excluder, error) {
	matcher := ignore.NewMatcher(logger)
	if err := matcher.AddPatterns(o.Exclude...); err != nil {
		return nil, err
	}
	if o.ExcludeFrom != "" {
		if err := matcher.LoadFile(o.ExcludeFrom); err != nil {
			return nil, err
		}
	}
	if matcher.Len() == 0 {
		return nil, nil
	}
	return matcher, nil
}

// runBatch runs p over patterns and prints the summary when one was requested.
func (a *app) runBatch(cmd *cobra.Command, opts *batchOptions, p *batch.Processor, patterns []string) error {
	exclude, err := opts.excluder(a.logger)
	if err != nil {
		return fmt.Errorf("failed to load exclude patterns: %w", err)
	}

	p.Exclude = exclude
	p.Out = cmd.OutOrStdout()
	p.Logger = a.logger.With(zap.String("command", cmd.Name()))

	summary, err := p.Run(cmd.Context(), patterns)
	if err != nil {
		return err
	}

	if a.Summary != "" {
		if err := summary.Write(cmd.OutOrStdout(), a.Summary); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}
