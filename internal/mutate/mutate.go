// Package mutate rewrites individual task lines in place.
//
// Every operation edits the raw line text and leaves everything outside the
// touched tokens alone. Callers are responsible for writing the updated
// collection back to its surface or file.
package mutate

import "errors"

// Result is the outcome of a line mutation.
type Result struct {
	Line    string
	Changed bool
}

var (
	// ErrCompletedLine is returned when a mutation does not apply to a
	// completed task (priority and the "x" marker are mutually exclusive
	// at the start of a line).
	ErrCompletedLine = errors.New("line is marked completed")

	// ErrInvalidPriority is returned for a priority that is not a single
	// uppercase letter.
	ErrInvalidPriority = errors.New("priority must be a single letter A-Z")
)
