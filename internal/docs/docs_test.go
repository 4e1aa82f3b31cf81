package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	want := []string{"config", "keys", "status"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected topics %v, got %v", want, got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Keys ")
	if !ok {
		t.Fatalf("expected keys topic")
	}
	if !strings.Contains(body, "ctrl+s") {
		t.Fatalf("expected keys topic to document ctrl+s")
	}
	if _, ok := Get("../docs"); ok {
		t.Fatalf("expected path-like topic to be rejected")
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
}
