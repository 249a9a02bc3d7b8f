// Package imagecompress recompresses image files in place with an external
// converter.
//
// The converter is called once per file as
//
//	<converter> -in PATH -out PATH [-opct TYPE] -z
//
// and is fire-and-forget: its exit status never fails the batch. Standard
// output of the converter is discarded; standard error is forwarded.
package imagecompress

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"pxtools/pkg/executor"
	"pxtools/pkg/logging"
)

// DefaultConverter is the converter executable used when none is configured.
const DefaultConverter = "pxcastconvert"

// Executor runs the converter with an argument vector.
// *executor.WrappedExecutor satisfies it.
type Executor interface {
	Program() string
	Execute(ctx context.Context, args []string, opts ...executor.Option) (*executor.Result, error)
}

// Args builds the converter arguments for an in-place conversion of path.
// componentType is passed through as -opct when it is not empty.
func Args(path, componentType string) []string {
	args := []string{"-in", path, "-out", path}
	if componentType != "" {
		args = append(args, "-opct", componentType)
	}
	return append(args, "-z")
}

// Compressor is a batch.Action that runs the converter on each file.
type Compressor struct {
	ComponentType string
	DryRun        bool

	exec   Executor
	out    io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// New returns a Compressor. Dry-run command lines are written to out;
// converter diagnostics are forwarded to stderr. A nil logger is replaced by
// a no-op logger.
func New(exec Executor, componentType string, dryRun bool, out, stderr io.Writer, logger *zap.Logger) *Compressor {
	logger = logging.OrNop(logger)
	if out == nil {
		out = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Compressor{
		ComponentType: componentType,
		DryRun:        dryRun,
		exec:          exec,
		out:           out,
		stderr:        stderr,
		logger:        logger,
	}
}

// Apply converts path in place. Converter failures are logged and otherwise
// ignored; only a failure to write a dry-run line is returned.
func (c *Compressor) Apply(ctx context.Context, path string) error {
	args := Args(path, c.ComponentType)

	if c.DryRun {
		if _, err := fmt.Fprintln(c.out, executor.CommandLine(c.exec.Program(), args...)); err != nil {
			return fmt.Errorf("failed to write command line: %w", err)
		}
		return nil
	}

	c.logger.Debug("Running converter", zap.String("program", c.exec.Program()), zap.Strings("args", args))
	result, err := c.exec.Execute(ctx, args,
		executor.WithCapture(false, false),
		executor.WithStderrWriter(c.stderr),
	)
	switch {
	case err == nil:
		c.logger.Debug("Converter finished", zap.String("path", path))
	case !result.Started():
		c.logger.Warn("Converter could not be started",
			zap.String("program", c.exec.Program()),
			zap.String("path", path),
			zap.Error(err))
	default:
		c.logger.Debug("Converter failed",
			zap.String("path", path),
			zap.Int("exitCode", result.ExitCode),
			zap.Error(err))
	}
	return nil
}
