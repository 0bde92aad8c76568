package mutate

import (
	"strings"

	"todotxt-cli/internal/model"
)

// InsertTags adds +tags to a line, keeping todo.txt's conventional field
// order: description, projects, contexts, metadata. Tags already on the line
// are dropped; when none remain, the line is returned unchanged. The tag
// block lands immediately before the first @context or key:value token,
// or at the end of the line when neither exists.
//
// Spacing is normalized only at the splice seam. Whatever whitespace the
// user keeps elsewhere on the line is untouched.
func InsertTags(line string, tags []string) Result {
	t := model.Parse(line)

	var missing []string
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "+")
		if tag == "" || seen[tag] || t.HasProject(tag) {
			continue
		}
		seen[tag] = true
		missing = append(missing, tag)
	}
	if len(missing) == 0 {
		return Result{Line: line}
	}

	block := "+" + strings.Join(missing, " +")

	var out string
	if at := insertionPoint(line); at >= 0 {
		// The anchor token starts right after its separating spaces, so a
		// single trailing space on the block keeps spacing single at the seam.
		out = line[:at] + block + " " + line[at:]
	} else {
		out = strings.TrimRight(line, " ") + " " + block
	}
	return Result{Line: out, Changed: true}
}

// insertionPoint is the byte offset of the first context or metadata token,
// or -1 when the line has neither.
func insertionPoint(line string) int {
	off := 0
	for off < len(line) {
		for off < len(line) && line[off] == ' ' {
			off++
		}
		end := off
		for end < len(line) && line[end] != ' ' {
			end++
		}
		tok := line[off:end]
		if model.IsContextToken(tok) || model.IsMetaToken(tok) {
			return off
		}
		off = end
	}
	return -1
}
