// Package model parses todo.txt task lines into their semantic fields.
//
// A task is always one line of text. The raw line stays authoritative:
// parsed fields are read-only views and mutations happen on the line itself
// (see internal/mutate), never by rebuilding a line from fields. That keeps
// user formatting outside the recognized tokens intact.
package model

import (
	"regexp"
	"strings"
)

// Task is the parsed view of a single todo.txt line.
type Task struct {
	// Raw is the original line, unmodified.
	Raw string

	// Completed is true iff the line starts with "x ".
	Completed bool
	// CompletionDate is the YYYY-MM-DD token right after the "x " marker,
	// or empty when the marker carries no date.
	CompletionDate string
	// CreationDate is the leading date of an open task (after an optional
	// priority marker), or the second date of a completed "x DATE DATE" prefix.
	CreationDate string
	// Priority is the letter of a leading "(A) " marker. Completed lines
	// never carry a priority: the "x" marker wins at the start of the line.
	Priority string

	// Projects and Contexts hold distinct +tag / @tag names in first-seen
	// order. Meta holds key:value tokens, first occurrence of a key wins.
	Projects []string
	Contexts []string
	Meta     map[string]string
}

var (
	dateRe        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	leadingDateRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?: |$)`)
	priorityRe    = regexp.MustCompile(`^\(([A-Z])\) `)
)

// Parse derives a Task from a line. It is total: blank or malformed lines
// parse to a Task with every optional field absent, never an error.
func Parse(line string) Task {
	t := Task{Raw: line}

	if strings.HasPrefix(line, "x ") {
		t.Completed = true
		rest := line[2:]
		if m := leadingDateRe.FindStringSubmatch(rest); m != nil {
			t.CompletionDate = m[1]
			rest = rest[len(m[0]):]
			if m := leadingDateRe.FindStringSubmatch(rest); m != nil {
				t.CreationDate = m[1]
			}
		}
	} else {
		rest := line
		if m := priorityRe.FindStringSubmatch(rest); m != nil {
			t.Priority = m[1]
			rest = rest[len(m[0]):]
		}
		if m := leadingDateRe.FindStringSubmatch(rest); m != nil {
			t.CreationDate = m[1]
		}
	}

	seenProject := map[string]bool{}
	seenContext := map[string]bool{}
	for _, tok := range strings.Fields(line) {
		switch {
		case IsProjectToken(tok):
			name := tok[1:]
			if !seenProject[name] {
				seenProject[name] = true
				t.Projects = append(t.Projects, name)
			}
		case IsContextToken(tok):
			name := tok[1:]
			if !seenContext[name] {
				seenContext[name] = true
				t.Contexts = append(t.Contexts, name)
			}
		case IsMetaToken(tok):
			key, val, _ := strings.Cut(tok, ":")
			if t.Meta == nil {
				t.Meta = map[string]string{}
			}
			if _, ok := t.Meta[key]; !ok {
				t.Meta[key] = val
			}
		}
	}
	return t
}

// DueDate returns the value of the "due" metadata key iff it is a
// well-formed YYYY-MM-DD date. A non-conforming due value is not a date.
func (t Task) DueDate() (string, bool) {
	v, ok := t.Meta["due"]
	if !ok || !dateRe.MatchString(v) {
		return "", false
	}
	return v, true
}

// HasProject reports whether the line already carries +name.
func (t Task) HasProject(name string) bool {
	for _, p := range t.Projects {
		if p == name {
			return true
		}
	}
	return false
}

// IsBlank reports whether a line is empty or all-whitespace. Blank lines
// are separators: they are dropped before sorting and never treated as tasks.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsProjectToken reports whether a whitespace-delimited token is a +project tag.
func IsProjectToken(tok string) bool {
	return len(tok) > 1 && tok[0] == '+'
}

// IsContextToken reports whether a whitespace-delimited token is an @context tag.
func IsContextToken(tok string) bool {
	return len(tok) > 1 && tok[0] == '@'
}

// IsMetaToken reports whether a whitespace-delimited token is a key:value pair.
// The key is everything before the first colon; both halves must be non-empty.
func IsMetaToken(tok string) bool {
	if IsProjectToken(tok) || IsContextToken(tok) {
		return false
	}
	i := strings.Index(tok, ":")
	return i > 0 && i < len(tok)-1
}
