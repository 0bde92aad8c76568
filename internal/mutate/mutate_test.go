package mutate

import (
	"errors"
	"reflect"
	"testing"
)

const today = "2024-06-15"

func TestToggleComplete(t *testing.T) {
	res := ToggleComplete("buy milk", today)
	if !res.Changed || res.Line != "x 2024-06-15 buy milk" {
		t.Fatalf("got %+v", res)
	}

	back := ToggleComplete(res.Line, today)
	if !back.Changed || back.Line != "buy milk" {
		t.Fatalf("toggle twice did not restore: %+v", back)
	}
}

func TestToggleCompleteKeepsCreationDate(t *testing.T) {
	res := ToggleComplete("x 2024-03-01 2024-02-10 ship it", today)
	if res.Line != "2024-02-10 ship it" {
		t.Fatalf("got %q, want creation date kept as leading date", res.Line)
	}
}

func TestToggleCompleteWithoutMarkerDate(t *testing.T) {
	res := ToggleComplete("x no date here", today)
	if res.Line != "no date here" {
		t.Fatalf("got %q", res.Line)
	}
}

func TestToggleCompleteBlankIsNoop(t *testing.T) {
	res := ToggleComplete("   ", today)
	if res.Changed || res.Line != "   " {
		t.Fatalf("got %+v", res)
	}
}

func TestSetPriority(t *testing.T) {
	res, err := SetPriority("write report", "A")
	if err != nil || res.Line != "(A) write report" {
		t.Fatalf("got %+v, %v", res, err)
	}

	res, err = SetPriority(res.Line, "B")
	if err != nil || res.Line != "(B) write report" {
		t.Fatalf("replace: got %+v, %v", res, err)
	}

	res, err = SetPriority(res.Line, "-")
	if err != nil || res.Line != "write report" || !res.Changed {
		t.Fatalf("clear: got %+v, %v", res, err)
	}
}

func TestSetPriorityNoopWhenUnchanged(t *testing.T) {
	res, err := SetPriority("(A) same", "A")
	if err != nil || res.Changed {
		t.Fatalf("got %+v, %v", res, err)
	}
}

func TestSetPriorityRefusesCompletedLine(t *testing.T) {
	_, err := SetPriority("x 2024-01-01 done thing", "A")
	if !errors.Is(err, ErrCompletedLine) {
		t.Fatalf("got %v, want ErrCompletedLine", err)
	}
}

func TestSetPriorityRejectsInvalidLetter(t *testing.T) {
	for _, bad := range []string{"a", "AA", "1", "("} {
		if _, err := SetPriority("task", bad); !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("letter %q: got %v, want ErrInvalidPriority", bad, err)
		}
	}
}

func TestInsertTagsBeforeContextAndMeta(t *testing.T) {
	res := InsertTags("write report @work due:2024-05-01", []string{"work-proj"})
	want := "write report +work-proj @work due:2024-05-01"
	if res.Line != want {
		t.Fatalf("got %q, want %q", res.Line, want)
	}
}

func TestInsertTagsAppendsWithoutAnchor(t *testing.T) {
	res := InsertTags("plain text", []string{"a", "b"})
	if res.Line != "plain text +a +b" {
		t.Fatalf("got %q", res.Line)
	}
}

func TestInsertTagsKeepsUserSpacing(t *testing.T) {
	res := InsertTags("write  report @work", []string{"proj"})
	want := "write  report +proj @work"
	if res.Line != want {
		t.Fatalf("got %q, want %q", res.Line, want)
	}

	res = InsertTags("a  b", []string{"t"})
	if res.Line != "a  b +t" {
		t.Fatalf("got %q", res.Line)
	}
}

func TestInsertTagsDropsExisting(t *testing.T) {
	res := InsertTags("task +done-already @home", []string{"done-already", "fresh"})
	if res.Line != "task +done-already +fresh @home" {
		t.Fatalf("got %q", res.Line)
	}

	noop := InsertTags("task +x", []string{"x"})
	if noop.Changed || noop.Line != "task +x" {
		t.Fatalf("got %+v", noop)
	}
}

func TestInsertTagsIdempotent(t *testing.T) {
	tags := []string{"alpha", "beta"}
	once := InsertTags("do thing @ctx", tags)
	twice := InsertTags(once.Line, tags)
	if twice.Changed || once.Line != twice.Line {
		t.Fatalf("not idempotent: %q vs %q", once.Line, twice.Line)
	}
}

func TestSplit(t *testing.T) {
	in := []string{
		"open one",
		"x 2024-01-01 done one",
		"",
		"open two",
		"x done two",
	}
	remaining, completed := Split(in)

	wantRemaining := []string{"open one", "", "open two"}
	wantCompleted := []string{"x 2024-01-01 done one", "x done two"}
	if !reflect.DeepEqual(remaining, wantRemaining) {
		t.Fatalf("remaining = %v", remaining)
	}
	if !reflect.DeepEqual(completed, wantCompleted) {
		t.Fatalf("completed = %v", completed)
	}
	if len(remaining)+len(completed) != len(in) {
		t.Fatalf("conservation broken: %d + %d != %d", len(remaining), len(completed), len(in))
	}
}
