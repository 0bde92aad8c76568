// Package tagutil mines the tag vocabulary of a task collection.
package tagutil

import (
	"sort"

	"todotxt-cli/internal/model"
)

// Projects returns the distinct +tag names across all lines, alphabetical.
func Projects(lines []string) []string {
	return collect(lines, func(t model.Task) []string { return t.Projects })
}

// Contexts returns the distinct @tag names across all lines, alphabetical.
func Contexts(lines []string) []string {
	return collect(lines, func(t model.Task) []string { return t.Contexts })
}

func collect(lines []string, pick func(model.Task) []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, line := range lines {
		for _, name := range pick(model.Parse(line)) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}
