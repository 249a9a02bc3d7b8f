package batch

import (
	"fmt"
	"io"
)

// Notifier writes the per-file notices.
type Notifier struct {
	w io.Writer
}

// NewNotifier writes notices to w, or discards them when w is nil.
func NewNotifier(w io.Writer) *Notifier {
	if w == nil {
		w = io.Discard
	}
	return &Notifier{w: w}
}

// Processing announces that the action is about to run on path.
func (n *Notifier) Processing(path string) error {
	return n.printf("Processing %s\n", path)
}

// Skipping announces that path is left untouched.
func (n *Notifier) Skipping(path string) error {
	return n.printf("Skipping %s\n", path)
}

func (n *Notifier) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(n.w, format, args...); err != nil {
		return fmt.Errorf("failed to write notice: %w", err)
	}
	return nil
}
