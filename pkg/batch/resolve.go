package batch

import (
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"pxtools/pkg/logging"
)

// Globber expands one shell-style pattern into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}

// GlobberFunc adapts a function to the Globber interface.
type GlobberFunc func(pattern string) ([]string, error)

// Glob calls f(pattern).
func (f GlobberFunc) Glob(pattern string) ([]string, error) {
	return f(pattern)
}

// FilepathGlobber expands patterns with filepath.Glob relative to the
// current working directory, following shell conventions for hidden names
// and negated bracket expressions.
var FilepathGlobber Globber = ShellGlobber{}

// Excluder reports whether a resolved path must be dropped.
type Excluder interface {
	Matches(path string) bool
}

// Resolution is the ordered result of expanding a list of patterns.
type Resolution struct {
	Paths    []string // Matches in argument order, then glob order. Not deduplicated.
	Excluded []string // Matches dropped by the excluder.
}

// Resolve expands every pattern in order and concatenates the matches.
// A pattern with no matches, or a malformed one, contributes nothing.
// Matches for which exclude reports true are moved to Resolution.Excluded.
func Resolve(patterns []string, globber Globber, exclude Excluder, logger *zap.Logger) Resolution {
	if globber == nil {
		globber = FilepathGlobber
	}
	logger = logging.OrNop(logger)

	var res Resolution
	for _, pattern := range patterns {
		matches, err := globber.Glob(pattern)
		if err != nil {
			if errors.Is(err, filepath.ErrBadPattern) {
				logger.Debug("Ignoring malformed pattern", zap.String("pattern", pattern), zap.Error(err))
			} else {
				logger.Debug("Pattern could not be expanded", zap.String("pattern", pattern), zap.Error(err))
			}
			continue
		}
		logger.Debug("Expanded pattern", zap.String("pattern", pattern), zap.Int("matches", len(matches)))

		for _, path := range matches {
			if exclude != nil && exclude.Matches(path) {
				logger.Debug("Excluded path", zap.String("path", path))
				res.Excluded = append(res.Excluded, path)
				continue
			}
			res.Paths = append(res.Paths, path)
		}
	}
	return res
}
