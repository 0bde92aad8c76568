// Package sorting reorders the lines of a todo.txt list.
//
// All five modes are pure over their input. Blank separator lines carry no
// content, so they are dropped before sorting; grouped modes re-emit a single
// blank line at every group-key change instead.
package sorting

import (
	"fmt"
	"sort"
	"strings"

	"todotxt-cli/internal/model"
)

// Mode selects an ordering.
type Mode string

const (
	ModeDate     Mode = "date"
	ModePriority Mode = "priority"
	ModeProject  Mode = "project"
	ModeContext  Mode = "context"
	ModeDue      Mode = "due"
)

// Modes lists every valid mode in display order.
func Modes() []Mode {
	return []Mode{ModeDate, ModePriority, ModeProject, ModeContext, ModeDue}
}

type UnknownModeError struct {
	Mode string
}

func (e UnknownModeError) Error() string {
	return fmt.Sprintf("unknown sort mode: %q (valid: date, priority, project, context, due)", e.Mode)
}

// ParseMode validates a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", UnknownModeError{Mode: s}
}

// Sort returns a new line sequence ordered by mode. Input blank lines are
// discarded; grouped modes insert one blank separator between runs of
// differing group key (none before the first group or after the last).
func Sort(lines []string, mode Mode) ([]string, error) {
	tasks := make([]model.Task, 0, len(lines))
	for _, l := range lines {
		if !model.IsBlank(l) {
			tasks = append(tasks, model.Parse(l))
		}
	}

	var less func(a, b model.Task) bool
	var groupKey func(t model.Task) string

	switch mode {
	case ModeDate:
		less = dateLess
	case ModePriority:
		less = priorityLess
		groupKey = priorityGroup
	case ModeProject:
		less = keyLess(projectGroup)
		groupKey = projectGroup
	case ModeContext:
		less = keyLess(contextGroup)
		groupKey = contextGroup
	case ModeDue:
		less = dueLess
		groupKey = dueGroup
	default:
		return nil, UnknownModeError{Mode: string(mode)}
	}

	sort.SliceStable(tasks, func(i, j int) bool { return less(tasks[i], tasks[j]) })

	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		if groupKey != nil && i > 0 && groupKey(t) != groupKey(tasks[i-1]) {
			out = append(out, "")
		}
		out = append(out, t.Raw)
	}
	return out, nil
}

// effectiveDate is the completion date for done tasks, else the creation date.
func effectiveDate(t model.Task) string {
	if t.Completed {
		return t.CompletionDate
	}
	return t.CreationDate
}

// dateLess orders most recent first; any dated line sorts before every
// undated one, and undated lines fall back to raw lexical order.
func dateLess(a, b model.Task) bool {
	da, db := effectiveDate(a), effectiveDate(b)
	switch {
	case da != "" && db == "":
		return true
	case da == "" && db != "":
		return false
	case da == "" && db == "":
		return a.Raw < b.Raw
	default:
		return da > db
	}
}

// priorityLess implements the three-tier grouped ordering: open tasks without
// a priority first, then each priority letter ascending (lexical inside a
// letter), completed tasks always last regardless of any marker in their text.
func priorityLess(a, b model.Task) bool {
	ra, rb := priorityRank(a), priorityRank(b)
	if ra != rb {
		return ra < rb
	}
	if ra == 1 {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Raw < b.Raw
	}
	return false
}

func priorityRank(t model.Task) int {
	switch {
	case t.Completed:
		return 2
	case t.Priority != "":
		return 1
	default:
		return 0
	}
}

func priorityGroup(t model.Task) string {
	switch {
	case t.Completed:
		return "done"
	case t.Priority != "":
		return "pri:" + t.Priority
	default:
		return ""
	}
}

// keyLess orders ascending by group key; the empty key (no tag) sorts first.
func keyLess(key func(model.Task) string) func(a, b model.Task) bool {
	return func(a, b model.Task) bool {
		return key(a) < key(b)
	}
}

// projectGroup is the first +tag on the line, or empty.
func projectGroup(t model.Task) string {
	if len(t.Projects) == 0 {
		return ""
	}
	return t.Projects[0]
}

// contextGroup is the first @tag on the line, or empty.
func contextGroup(t model.Task) string {
	if len(t.Contexts) == 0 {
		return ""
	}
	return t.Contexts[0]
}

// dueLess orders ascending by due date; a line with a due date always sorts
// before one without.
func dueLess(a, b model.Task) bool {
	da, aok := a.DueDate()
	db, bok := b.DueDate()
	switch {
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	case !aok && !bok:
		return false
	default:
		return da < db
	}
}

func dueGroup(t model.Task) string {
	d, _ := t.DueDate()
	return d
}
