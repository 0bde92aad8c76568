package tagutil

import (
	"reflect"
	"testing"
)

func TestProjects(t *testing.T) {
	lines := []string{"buy milk +errands", "call mom +family +errands"}
	got := Projects(lines)
	want := []string{"errands", "family"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestContexts(t *testing.T) {
	lines := []string{"a @phone", "b @home @phone", "", "plain"}
	got := Contexts(lines)
	want := []string{"home", "phone"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestProjectsEmptyCollection(t *testing.T) {
	if got := Projects(nil); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
