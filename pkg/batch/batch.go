package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"pxtools/pkg/logging"
)

// Action is applied to each accepted file. A returned error stops the batch.
type Action interface {
	Apply(ctx context.Context, path string) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(ctx context.Context, path string) error

// Apply calls f(ctx, path).
func (f ActionFunc) Apply(ctx context.Context, path string) error {
	return f(ctx, path)
}

// AcceptFunc is an optional per-file check run after the extension filter.
// Returning false skips the file with a notice; an error stops the batch.
type AcceptFunc func(path string) (bool, error)

// Processor holds everything one batch run needs.
type Processor struct {
	Extensions ExtensionSet
	Action     Action
	Accept     AcceptFunc  // optional
	Globber    Globber     // defaults to FilepathGlobber
	Exclude    Excluder    // optional
	Out        io.Writer   // notices; defaults to io.Discard
	Logger     *zap.Logger // defaults to a no-op logger
}

// Run resolves patterns and processes the matches sequentially. The summary
// reflects the files handled so far even when an error is returned.
func (p *Processor) Run(ctx context.Context, patterns []string) (Summary, error) {
	if p.Action == nil {
		return Summary{}, errors.New("batch: no action configured")
	}
	logger := logging.OrNop(p.Logger)
	notices := NewNotifier(p.Out)

	res := Resolve(patterns, p.Globber, p.Exclude, logger)
	summary := Summary{
		Patterns: len(patterns),
		Resolved: len(res.Paths) + len(res.Excluded),
		Excluded: len(res.Excluded),
	}
	logger.Debug("Resolved patterns",
		zap.Strings("patterns", patterns),
		zap.Int("paths", len(res.Paths)),
		zap.Int("excluded", len(res.Excluded)))

	for _, path := range res.Paths {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("batch interrupted before %s: %w", path, err)
		}

		// Any stat failure counts as missing, not only fs.ErrNotExist.
		info, err := os.Stat(path)
		if err != nil {
			logger.Debug("Path not accessible before processing", zap.String("path", path), zap.Error(err))
			summary.Missing++
			continue
		}

		if !info.Mode().IsRegular() || !p.Extensions.Allows(path) {
			logger.Debug("Skipping path",
				zap.String("path", path),
				zap.String("extension", Ext(path)),
				zap.Bool("regular", info.Mode().IsRegular()))
			summary.Skipped++
			if err := notices.Skipping(path); err != nil {
				return summary, err
			}
			continue
		}

		if p.Accept != nil {
			ok, err := p.Accept(path)
			if err != nil {
				return summary, fmt.Errorf("failed to inspect %s: %w", path, err)
			}
			if !ok {
				logger.Debug("Path rejected by acceptance check", zap.String("path", path))
				summary.Skipped++
				if err := notices.Skipping(path); err != nil {
					return summary, err
				}
				continue
			}
		}

		if err := notices.Processing(path); err != nil {
			return summary, err
		}
		if err := p.Action.Apply(ctx, path); err != nil {
			logger.Error("Failed to process file", zap.String("path", path), zap.Error(err))
			return summary, fmt.Errorf("failed to process %s: %w", path, err)
		}
		summary.Processed++
	}

	// Actions may swallow a cancellation, e.g. a killed converter.
	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("batch interrupted: %w", err)
	}

	logger.Debug("Batch completed",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("missing", summary.Missing),
		zap.Int("excluded", summary.Excluded))
	return summary, nil
}
