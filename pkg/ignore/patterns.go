package ignore

import (
	"strings"
)

// Placeholders keep the regex produced for '**' away from the single
// wildcard rewrite that follows it.
const (
	middleDoubleStar   = "\x00mid\x00"
	trailingDoubleStar = "\x00trail\x00"
	leadingDoubleStar  = "\x00lead\x00"
)

// escapeSpecialChars escapes regex special characters except for '*', '?' and '/'.
func escapeSpecialChars(pattern string) string {
	specialChars := `\.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns marks the three '**' forms gitignore understands.
func handleDoubleStarPatterns(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "/**/", middleDoubleStar)
	if strings.HasSuffix(pattern, "/**") {
		pattern = strings.TrimSuffix(pattern, "/**") + trailingDoubleStar
	}
	if strings.HasPrefix(pattern, "**/") {
		pattern = leadingDoubleStar + strings.TrimPrefix(pattern, "**/")
	}
	return pattern
}

// wildcardToRegex converts '*' and '?' to regex equivalents that never cross
// a path separator, then expands the '**' placeholders.
func wildcardToRegex(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "*", `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", `[^/]`)

	pattern = strings.ReplaceAll(pattern, middleDoubleStar, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, trailingDoubleStar, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, leadingDoubleStar, `(.*/)?`)
	return pattern
}

// anchorPattern anchors the regex so it matches a whole path component
// sequence. Directory patterns only match paths beneath the directory.
func anchorPattern(pattern string, anchored, dirOnly bool) string {
	if dirOnly {
		pattern += "/.*$"
	} else {
		pattern += "(/.*)?$"
	}

	if anchored {
		return "^" + pattern
	}
	return "^(|.*/)" + pattern
}
