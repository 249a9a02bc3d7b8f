package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "no patterns", patterns: nil, path: "a.txt", want: false},
		{name: "extension wildcard", patterns: []string{"*.log"}, path: "a.log", want: true},
		{name: "extension wildcard in subdirectory", patterns: []string{"*.log"}, path: "sub/dir/a.log", want: true},
		{name: "extension wildcard does not match other extension", patterns: []string{"*.log"}, path: "a.txt", want: false},
		{name: "question mark matches one character", patterns: []string{"file?.c"}, path: "file1.c", want: true},
		{name: "question mark does not match separator", patterns: []string{"a?b.c"}, path: "a/b.c", want: false},
		{name: "star does not cross separator", patterns: []string{"src*.c"}, path: "src/main.c", want: false},
		{name: "dot is literal", patterns: []string{"a.c"}, path: "abc", want: false},
		{name: "directory pattern matches contents", patterns: []string{"build/"}, path: "build/out.txt", want: true},
		{name: "directory pattern matches nested contents", patterns: []string{"build/"}, path: "src/build/out.txt", want: true},
		{name: "directory pattern does not match file", patterns: []string{"build/"}, path: "build", want: false},
		{name: "anchored pattern matches at root", patterns: []string{"/a.txt"}, path: "a.txt", want: true},
		{name: "anchored pattern does not match nested", patterns: []string{"/a.txt"}, path: "sub/a.txt", want: false},
		{name: "leading double star", patterns: []string{"**/gen.h"}, path: "x/y/gen.h", want: true},
		{name: "middle double star", patterns: []string{"a/**/b.c"}, path: "a/x/y/b.c", want: true},
		{name: "middle double star with no directories", patterns: []string{"a/**/b.c"}, path: "a/b.c", want: true},
		{name: "trailing double star", patterns: []string{"third_party/**"}, path: "third_party/lib/x.h", want: true},
		{name: "negation re-includes", patterns: []string{"*.h", "!keep.h"}, path: "keep.h", want: false},
		{name: "last match wins", patterns: []string{"!keep.h", "*.h"}, path: "keep.h", want: true},
		{name: "comments and blanks are ignored", patterns: []string{"# *.txt", "", "   "}, path: "a.txt", want: false},
		{name: "escaped hash is literal", patterns: []string{`\#notes.txt`}, path: "#notes.txt", want: true},
		{name: "leading dot slash is normalized", patterns: []string{"/a.txt"}, path: "./a.txt", want: true},
		{name: "absolute path", patterns: []string{"*.tif"}, path: "/data/scans/a.tif", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(nil)
			require.NoError(t, m.AddPatterns(tt.patterns...))
			assert.Equal(t, tt.want, m.Matches(tt.path))
		})
	}
}

func TestMatcherMatchesWithPattern(t *testing.T) {
	m := NewMatcher(nil)
	require.NoError(t, m.AddPatterns("*.h", "!keep.h"))
	assert.Equal(t, 2, m.Len())

	matched, p := m.MatchesWithPattern("keep.h")
	assert.False(t, matched)
	require.NotNil(t, p)
	assert.Equal(t, "!keep.h", p.Line)
	assert.True(t, p.Negate)
	assert.Equal(t, 2, p.LineNo)

	matched, p = m.MatchesWithPattern("other.c")
	assert.False(t, matched)
	assert.Nil(t, p)
}

func TestMatcherLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exclude")
	require.NoError(t, os.WriteFile(path, []byte("# generated\n*.txx\nvendor/\n"), 0o644))

	m := NewMatcher(nil)
	require.NoError(t, m.LoadFile(path))

	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Matches("a.txx"))
	assert.True(t, m.Matches("vendor/lib.c"))
	assert.False(t, m.Matches("main.c"))
}

func TestMatcherLoadFileMissing(t *testing.T) {
	m := NewMatcher(nil)
	err := m.LoadFile(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
