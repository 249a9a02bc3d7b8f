// Package whitespace strips trailing whitespace and expands tabs in text
// files, rewriting them in place.
//
// Every output line, the last one included, ends with a single '\n'. A file
// without a final newline gains one; an empty file stays empty. Since the
// output contains no tabs and no trailing whitespace, normalizing twice gives
// the same result as normalizing once.
package whitespace

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 2

// trailingSpace is the ASCII whitespace removed from line ends. Unicode
// spaces such as U+00A0 are content and stay.
const trailingSpace = " \t\r\v\f"

// NormalizeLine removes trailing whitespace from line and then expands each
// tab to the next multiple of tabWidth columns. Columns are counted in runes;
// a byte that is not valid UTF-8 counts as one column and is kept as is.
func NormalizeLine(line string, tabWidth int) string {
	line = strings.TrimRight(line, trailingSpace)
	return ExpandTabs(line, tabWidth)
}

// ExpandTabs replaces every tab in line with spaces up to the next tab stop.
func ExpandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}

	var b strings.Builder
	b.Grow(len(line) + tabWidth)
	col := 0
	for i := 0; i < len(line); {
		if line[i] == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		b.WriteString(line[i : i+size])
		col++
		i += size
	}
	return b.String()
}

// Normalize applies NormalizeLine to every line of content.
func Normalize(content []byte, tabWidth int) []byte {
	if len(content) == 0 {
		return content
	}

	text := string(content)
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	var buf bytes.Buffer
	buf.Grow(len(content) + 1)
	for _, line := range lines {
		buf.WriteString(NormalizeLine(line, tabWidth))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
