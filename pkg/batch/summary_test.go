package batch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryWrite(t *testing.T) {
	s := Summary{Patterns: 2, Resolved: 5, Excluded: 1, Missing: 1, Skipped: 1, Processed: 2}

	tests := []struct {
		format string
		want   string
	}{
		{
			format: FormatText,
			want:   "2 processed, 1 skipped, 1 missing, 1 excluded (5 paths from 2 patterns)\n",
		},
		{
			format: FormatJSON,
			want: `{
  "patterns": 2,
  "resolved": 5,
  "excluded": 1,
  "missing": 1,
  "skipped": 1,
  "processed": 2
}
`,
		},
		{
			format: FormatYAML,
			want: `patterns: 2
resolved: 5
excluded: 1
missing: 1
skipped: 1
processed: 2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, s.Write(&buf, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSummaryWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Summary{}.Write(&buf, "xml"))
	assert.Empty(t, buf.String())
}
