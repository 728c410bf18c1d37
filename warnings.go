package modextract

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal problem found while building the record of one
// page: a missing primary label (the page was skipped) or a field that
// could not be located.
type Warning struct {
	Page  int    // 1-based page number
	Field string // template field name
	Err   error
}

// Error returns the warning message
func (w Warning) Error() string {
	return fmt.Sprintf("page %d: %s: %v", w.Page, w.Field, w.Err)
}

// String implements fmt.Stringer
func (w Warning) String() string {
	return w.Error()
}

// Unwrap returns the underlying error
func (w Warning) Unwrap() error {
	return w.Err
}

// FormatWarnings renders warnings one per line
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.Error()
	}
	return strings.Join(lines, "\n")
}
