// Package cmd defines the pxtools command tree.
package cmd

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pxtools/pkg/logging"
	"pxtools/pkg/version"
)

// app carries the state shared by all subcommands of one root command.
type app struct {
	Debug   bool
	Summary string `validate:"omitempty,oneof=text json yaml"`

	logger *zap.Logger
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewRootCommand builds the pxtools root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: "pxtools batch-processes files matched by glob patterns",
		Long: `pxtools applies one action to every file matched by a list of glob patterns.

Patterns are expanded relative to the current directory. Each matched file
whose extension is allowed by the subcommand is announced with
"Processing <path>" and handled in place; any other match is announced with
"Skipping <path>". Files are handled one at a time, in argument order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Get().String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.Debug, "debug", false, "Enable development logging at debug level")
	rootCmd.PersistentFlags().StringVar(&a.Summary, "summary", "", "Print a run summary: text, json or yaml")

	rootCmd.AddCommand(newCompressImageCommand(a))
	rootCmd.AddCommand(newStripWhitespaceCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setup validates the global flags and builds the logger unless one was
// provided.
func (a *app) setup() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if a.logger != nil {
		return nil
	}

	logger, err := logging.Setup(a.Debug, version.AppName, version.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
