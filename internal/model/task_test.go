package model

import (
	"reflect"
	"testing"
)

func TestParseOpenTask(t *testing.T) {
	task := Parse("(A) 2024-02-10 call mom +family @phone due:2024-02-14")

	if task.Completed {
		t.Fatalf("expected not completed")
	}
	if task.Priority != "A" {
		t.Fatalf("priority = %q, want A", task.Priority)
	}
	if task.CreationDate != "2024-02-10" {
		t.Fatalf("creation date = %q", task.CreationDate)
	}
	if !reflect.DeepEqual(task.Projects, []string{"family"}) {
		t.Fatalf("projects = %v", task.Projects)
	}
	if !reflect.DeepEqual(task.Contexts, []string{"phone"}) {
		t.Fatalf("contexts = %v", task.Contexts)
	}
	due, ok := task.DueDate()
	if !ok || due != "2024-02-14" {
		t.Fatalf("due = %q ok=%v", due, ok)
	}
}

func TestParseCompletedTask(t *testing.T) {
	task := Parse("x 2024-03-01 2024-02-10 ship release +work")

	if !task.Completed {
		t.Fatalf("expected completed")
	}
	if task.CompletionDate != "2024-03-01" {
		t.Fatalf("completion date = %q", task.CompletionDate)
	}
	if task.CreationDate != "2024-02-10" {
		t.Fatalf("creation date = %q", task.CreationDate)
	}
}

func TestParseCompletedWithoutDate(t *testing.T) {
	task := Parse("x quick one")
	if !task.Completed || task.CompletionDate != "" {
		t.Fatalf("got completed=%v date=%q", task.Completed, task.CompletionDate)
	}
}

// A completed line's leading tokens are never re-read as a priority marker.
func TestPriorityNotRecognizedOnCompletedLine(t *testing.T) {
	task := Parse("x 2024-01-01 (A) was urgent once")
	if task.Priority != "" {
		t.Fatalf("priority = %q, want empty on completed line", task.Priority)
	}
}

func TestParseIsTotal(t *testing.T) {
	for _, line := range []string{"", "   ", "x", "(a) lowercase is text", "())(", "x2024-01-01 no space"} {
		task := Parse(line)
		if task.Raw != line {
			t.Fatalf("raw round-trip broken for %q", line)
		}
		if task.Completed {
			t.Fatalf("line %q wrongly judged completed", line)
		}
	}
}

func TestParseDistinctTagsKeepFirstSeenOrder(t *testing.T) {
	task := Parse("a +beta +alpha +beta @z @a @z note:1 note:2")
	if !reflect.DeepEqual(task.Projects, []string{"beta", "alpha"}) {
		t.Fatalf("projects = %v", task.Projects)
	}
	if !reflect.DeepEqual(task.Contexts, []string{"z", "a"}) {
		t.Fatalf("contexts = %v", task.Contexts)
	}
	if task.Meta["note"] != "1" {
		t.Fatalf("meta note = %q, want first occurrence", task.Meta["note"])
	}
}

func TestDueDateRejectsMalformedValue(t *testing.T) {
	if _, ok := Parse("pay rent due:friday").DueDate(); ok {
		t.Fatalf("expected malformed due value to be absent")
	}
	if _, ok := Parse("pay rent").DueDate(); ok {
		t.Fatalf("expected missing due to be absent")
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank(" \t ") {
		t.Fatalf("expected blank")
	}
	if IsBlank(" x ") {
		t.Fatalf("expected non-blank")
	}
}

func TestTokenClassifiers(t *testing.T) {
	if !IsProjectToken("+p") || IsProjectToken("+") || IsProjectToken("p") {
		t.Fatalf("project token classification broken")
	}
	if !IsContextToken("@c") || IsContextToken("@") {
		t.Fatalf("context token classification broken")
	}
	if !IsMetaToken("due:2024-01-01") || IsMetaToken("due:") || IsMetaToken(":v") || IsMetaToken("+k:v") {
		t.Fatalf("meta token classification broken")
	}
}
