package batch

import (
	"os"
	"path/filepath"
	"strings"
)

// ShellGlobber wraps a filepath.Match style globber with shell conventions:
// a bracket expression opened with "[!" is negated, "[^" matches a literal
// caret, and a wildcard component never matches a name starting with '.'
// unless the pattern component itself starts with '.'.
type ShellGlobber struct {
	Globber Globber // defaults to filepath.Glob
}

// Glob implements Globber.
func (s ShellGlobber) Glob(pattern string) ([]string, error) {
	inner := s.Globber
	if inner == nil {
		inner = GlobberFunc(filepath.Glob)
	}

	translated := translateBrackets(pattern)
	matches, err := inner.Glob(translated)
	if err != nil || len(matches) == 0 {
		return matches, err
	}

	patternParts := splitPath(filepath.Clean(translated))
	kept := matches[:0]
	for _, match := range matches {
		if !revealsHidden(patternParts, splitPath(match)) {
			kept = append(kept, match)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return kept, nil
}

// translateBrackets rewrites the opening of every bracket expression from
// shell syntax to filepath.Match syntax.
func translateBrackets(pattern string) string {
	if !strings.Contains(pattern, "[") {
		return pattern
	}

	escapes := os.PathSeparator != '\\'
	var b strings.Builder
	b.Grow(len(pattern) + 2)
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && escapes && i+1 < len(pattern):
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
			continue
		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
			if i+1 < len(pattern) {
				switch pattern[i+1] {
				case '!':
					b.WriteByte('^')
					i++
				case '^':
					if escapes {
						b.WriteString(`\^`)
						i++
					}
				}
			}
			continue
		case c == ']' && inClass:
			inClass = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// revealsHidden reports whether a wildcard pattern component matched a
// dot-prefixed name. Paths whose shape differs from the pattern after
// cleaning (".." collapsed through a wildcard) are left alone.
func revealsHidden(patternParts, matchParts []string) bool {
	if len(patternParts) != len(matchParts) {
		return false
	}
	for i, part := range patternParts {
		name := matchParts[i]
		if !strings.HasPrefix(name, ".") || strings.HasPrefix(strings.TrimPrefix(part, `\`), ".") {
			continue
		}
		if hasMeta(part) {
			return true
		}
	}
	return false
}

func hasMeta(part string) bool {
	magic := `*?[`
	if os.PathSeparator != '\\' {
		magic = `*?[\`
	}
	return strings.ContainsAny(part, magic)
}

func splitPath(path string) []string {
	return strings.Split(filepath.ToSlash(path), "/")
}
