package mutate

import (
	"todotxt-cli/internal/model"
)

// SetPriority sets, replaces, or clears the leading "(X) " marker. An empty
// letter (or "-") clears. Completed lines are refused: mark the task open
// first.
func SetPriority(line, letter string) (Result, error) {
	if letter == "-" {
		letter = ""
	}
	if letter != "" && (len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z') {
		return Result{Line: line}, ErrInvalidPriority
	}
	if model.IsBlank(line) {
		return Result{Line: line}, nil
	}

	t := model.Parse(line)
	if t.Completed {
		return Result{Line: line}, ErrCompletedLine
	}
	if t.Priority == letter {
		return Result{Line: line}, nil
	}

	rest := line
	if t.Priority != "" {
		rest = line[len("(X) "):]
	}
	if letter == "" {
		return Result{Line: rest, Changed: true}, nil
	}
	return Result{Line: "(" + letter + ") " + rest, Changed: true}, nil
}
