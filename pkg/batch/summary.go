package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Summary counts what happened to the resolved paths of one run.
type Summary struct {
	Patterns  int `json:"patterns" yaml:"patterns"`
	Resolved  int `json:"resolved" yaml:"resolved"`
	Excluded  int `json:"excluded" yaml:"excluded"`
	Missing   int `json:"missing" yaml:"missing"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Processed int `json:"processed" yaml:"processed"`
}

// Summary output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write renders s to w in the given format.
func (s Summary) Write(w io.Writer, format string) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintf(w, "%d processed, %d skipped, %d missing, %d excluded (%d paths from %d patterns)\n",
			s.Processed, s.Skipped, s.Missing, s.Excluded, s.Resolved, s.Patterns)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}
