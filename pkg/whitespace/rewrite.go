package whitespace

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
	"go.uber.org/zap"

	"pxtools/pkg/logging"
)

// Rewriter normalizes files in place. It implements batch.Action.
type Rewriter struct {
	TabWidth int
	DryRun   bool
	Logger   *zap.Logger
}

// NewRewriter returns a Rewriter with the given tab width. A nil logger is
// replaced by a no-op logger.
func NewRewriter(tabWidth int, dryRun bool, logger *zap.Logger) *Rewriter {
	return &Rewriter{TabWidth: tabWidth, DryRun: dryRun, Logger: logging.OrNop(logger)}
}

// Apply rewrites path with its normalized content. The new content replaces
// the old one through a temporary file and a rename, so readers see either
// the old or the new file. Symlinks are followed and the target is
// rewritten. Files that are already normalized are left untouched.
func (r *Rewriter) Apply(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	original, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", target, err)
	}

	normalized := Normalize(original, r.TabWidth)
	if bytes.Equal(original, normalized) {
		r.Logger.Debug("File already normalized", zap.String("path", path))
		return nil
	}

	if r.DryRun {
		r.Logger.Info("Would rewrite file",
			zap.String("path", path),
			zap.Int("sizeBefore", len(original)),
			zap.Int("sizeAfter", len(normalized)))
		return nil
	}

	if err := atomicwriter.WriteFile(target, normalized, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to rewrite %s: %w", target, err)
	}

	r.Logger.Debug("Rewrote file",
		zap.String("path", path),
		zap.String("target", target),
		zap.Int("sizeBefore", len(original)),
		zap.Int("sizeAfter", len(normalized)))
	return nil
}

// AcceptText is a batch acceptance check that rejects binary files.
func AcceptText(path string) (bool, error) {
	binary, err := IsBinaryFile(path)
	if err != nil {
		return false, err
	}
	return !binary, nil
}
