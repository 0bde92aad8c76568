package cli

import "fmt"

type lineRangeError struct {
	path string
	n    int
	max  int
}

func (e lineRangeError) Error() string {
	return fmt.Sprintf("line %d is out of range for %s (%d lines)", e.n, e.path, e.max)
}

type badLineArgError struct {
	arg string
}

func (e badLineArgError) Error() string {
	return fmt.Sprintf("expected a line number, got %q", e.arg)
}
