package mutate

import "todotxt-cli/internal/model"

// Split partitions a todo collection into its open and completed lines,
// each keeping its original relative order. Blank separators count as open
// so no line is ever dropped:
//
//	len(remaining) + len(completed) == len(lines)
func Split(lines []string) (remaining, completed []string) {
	remaining = make([]string, 0, len(lines))
	for _, line := range lines {
		if !model.IsBlank(line) && model.Parse(line).Completed {
			completed = append(completed, line)
			continue
		}
		remaining = append(remaining, line)
	}
	return remaining, completed
}
