// Package ignore matches paths against gitignore-style exclude patterns.
//
// Supported syntax: '*' and '?' within one path component, '**' across
// components, a leading '!' to re-include, a leading '/' to anchor at the
// start of the path, a trailing '/' to match only paths beneath a directory,
// and '#' comments. Bracket expressions are matched literally.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"pxtools/pkg/logging"
)

// Pattern is one compiled exclude pattern and where it came from.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Pattern started with '!'.
	Line   string         // Original pattern line.
	LineNo int            // Line number in the source (1-based).
}

// Matcher is an ordered list of patterns. The last matching pattern wins.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewMatcher returns an empty Matcher. A nil logger is replaced by a no-op logger.
func NewMatcher(logger *zap.Logger) *Matcher {
	return &Matcher{logger: logging.OrNop(logger)}
}

// Len reports the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// AddPatterns compiles lines and appends them. Blank lines and comments are
// ignored; a line that does not compile is returned as an error.
func (m *Matcher) AddPatterns(lines ...string) error {
	for i, line := range lines {
		re, negate, err := parsePatternLine(line)
		if err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", line, err)
		}
		if re == nil {
			continue
		}

		p := &Pattern{
			Regexp: re,
			Negate: negate,
			Line:   line,
			LineNo: i + 1,
		}
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled exclude pattern",
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
	return nil
}

// LoadFile reads an exclude file and compiles its lines.
func (m *Matcher) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read exclude file: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	if err := m.AddPatterns(lines...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	m.logger.Debug("Loaded exclude file", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

// Matches reports whether path is excluded.
func (m *Matcher) Matches(path string) bool {
	matched, _ := m.MatchesWithPattern(path)
	return matched
}

// MatchesWithPattern reports whether path is excluded and the last pattern
// that matched it, if any.
func (m *Matcher) MatchesWithPattern(path string) (bool, *Pattern) {
	normalized := normalizePath(path)

	matched := false
	var last *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			last = p
			matched = !p.Negate
		}
	}
	return matched, last
}

// normalizePath converts separators to forward slashes and drops a leading "./".
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return path
}

// parsePatternLine turns one line into a regular expression. It returns a nil
// regexp for blank lines and comments.
func parsePatternLine(line string) (*regexp.Regexp, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}

	// "\#" and "\!" start a literal pattern.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	anchored := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, false, nil
	}

	expr := escapeSpecialChars(trimmed)
	expr = handleDoubleStarPatterns(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, anchored, dirOnly)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false, err
	}
	return re, negate, nil
}
