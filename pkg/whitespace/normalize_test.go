package whitespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		tabWidth int
		want     string
	}{
		{name: "plain line unchanged", line: "int x;", tabWidth: 2, want: "int x;"},
		{name: "trailing spaces removed", line: "int x;   ", tabWidth: 2, want: "int x;"},
		{name: "trailing tabs removed before expansion", line: "int x;\t\t", tabWidth: 2, want: "int x;"},
		{name: "carriage return removed", line: "int x;\r", tabWidth: 2, want: "int x;"},
		{name: "leading tab", line: "\treturn 0;", tabWidth: 2, want: "  return 0;"},
		{name: "two leading tabs", line: "\t\treturn 0;", tabWidth: 2, want: "    return 0;"},
		{name: "tab after odd column pads one space", line: "a\tb", tabWidth: 2, want: "a b"},
		{name: "tab after even column pads two spaces", line: "ab\tc", tabWidth: 2, want: "ab  c"},
		{name: "tab width four", line: "a\tb", tabWidth: 4, want: "a   b"},
		{name: "runes count as one column", line: "é\tx", tabWidth: 2, want: "é x"},
		{name: "leading whitespace kept", line: "    indented", tabWidth: 2, want: "    indented"},
		{name: "whitespace only line", line: " \t \t", tabWidth: 2, want: ""},
		{name: "invalid tab width falls back to default", line: "\tx", tabWidth: 0, want: "  x"},
		{name: "latin-1 byte kept and counted as one column", line: "caf\xe9\tx", tabWidth: 2, want: "caf\xe9  x"},
		{name: "invalid byte before tab stop", line: "\xe9\tx", tabWidth: 4, want: "\xe9   x"},
		{name: "no-break space at end kept", line: "a\u00a0", tabWidth: 2, want: "a\u00a0"},
		{name: "next line at end kept", line: "a\u0085", tabWidth: 2, want: "a\u0085"},
		{name: "vertical tab and form feed removed", line: "a\v\f", tabWidth: 2, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLine(tt.line, tt.tabWidth))
		})
	}
}

func TestNormalizeSpecExample(t *testing.T) {
	got := Normalize([]byte("int   x;   \t\tdone\n"), DefaultTabWidth)
	assert.Equal(t, "int   x;      done\n", string(got))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty file stays empty", content: "", want: ""},
		{name: "single newline", content: "\n", want: "\n"},
		{name: "missing final newline is added", content: "a  \nb\t", want: "a\nb\n"},
		{name: "final newline kept single", content: "a\n", want: "a\n"},
		{name: "trailing blank lines kept", content: "a\n\n  \n", want: "a\n\n\n"},
		{name: "crlf converted", content: "a \r\nb\r\n", want: "a\nb\n"},
		{name: "tabs expanded on every line", content: "\ta\n\t\tb", want: "  a\n    b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Normalize([]byte(tt.content), DefaultTabWidth)))
		})
	}
}

func TestNormalizePreservesNonUTF8Bytes(t *testing.T) {
	in := []byte("/* caf\xe9 */\tint x;\n")
	got := Normalize(in, DefaultTabWidth)
	assert.Equal(t, "/* caf\xe9 */  int x;\n", string(got))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"int   x;   \t\tdone\n",
		"a\tb\tc   \r\n\t\n\n",
		"no newline\t",
		"\t\t\t",
		"mixed é\t\tü  \n",
		"caf\xe9\tx\xff\t\n",
	}

	for _, in := range inputs {
		once := Normalize([]byte(in), DefaultTabWidth)
		twice := Normalize(once, DefaultTabWidth)
		assert.Equal(t, string(once), string(twice), "input %q", in)
	}
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "no tabs", ExpandTabs("no tabs", 2))
	assert.Equal(t, "abc d", ExpandTabs("abc\td", 2))
	assert.Equal(t, "a       b", ExpandTabs("a\tb", 8))
}
