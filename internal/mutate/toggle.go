package mutate

import (
	"regexp"

	"todotxt-cli/internal/model"
)

var completionPrefixRe = regexp.MustCompile(`^x (?:\d{4}-\d{2}-\d{2}(?: |$))?`)

// ToggleComplete flips the completion state of a line. Completing prepends
// "x <today> "; reopening strips the "x" marker and its completion date,
// leaving any creation date as the new leading date. Blank lines are left
// untouched.
//
// A priority marker on the line is not removed when completing: the text
// stays, it simply stops being recognized as a priority while the line is
// done, so toggling twice restores the original line.
func ToggleComplete(line, today string) Result {
	if model.IsBlank(line) {
		return Result{Line: line}
	}
	if model.Parse(line).Completed {
		return Result{Line: completionPrefixRe.ReplaceAllString(line, ""), Changed: true}
	}
	return Result{Line: "x " + today + " " + line, Changed: true}
}
