package store

import (
	"fmt"

	"todotxt-cli/internal/mutate"
)

// ArchiveReport summarizes a completed archive run.
type ArchiveReport struct {
	Moved     int
	Remaining int
}

// PartialCommitError reports an archive that committed one half of the
// two-file update before failing. The caller must surface it verbatim so
// the user knows exactly what to reconcile.
type PartialCommitError struct {
	Committed string
	Failed    string
	Err       error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("archive partially committed: %s updated, %s not: %v", e.Committed, e.Failed, e.Err)
}

func (e *PartialCommitError) Unwrap() error { return e.Err }

// Archive moves every completed task from the todo collection to the end of
// its done collection, preserving relative order on both sides. Nothing is
// re-sorted and no line is dropped or duplicated.
//
// The done file is written first: if the second write then fails, completed
// tasks exist in both files instead of in neither, and the failure is
// reported as a PartialCommitError naming both halves so the user can
// reconcile.
func Archive(todo, done Collection) (ArchiveReport, error) {
	todoLines, err := todo.Read()
	if err != nil {
		return ArchiveReport{}, fmt.Errorf("read todo list: %w", err)
	}
	doneLines, err := done.ReadOrEmpty()
	if err != nil {
		return ArchiveReport{}, fmt.Errorf("read done list: %w", err)
	}

	remaining, completed := mutate.Split(todoLines)
	report := ArchiveReport{Moved: len(completed), Remaining: len(remaining)}
	if len(completed) == 0 {
		return report, nil
	}

	newDone := make([]string, 0, len(doneLines)+len(completed))
	newDone = append(newDone, doneLines...)
	newDone = append(newDone, completed...)

	if err := done.Write(newDone); err != nil {
		return report, fmt.Errorf("write done list: %w", err)
	}
	if err := todo.Write(remaining); err != nil {
		return report, &PartialCommitError{Committed: done.Path, Failed: todo.Path, Err: err}
	}
	return report, nil
}
