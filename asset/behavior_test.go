package asset

import (
	"errors"
	"io/fs"
	"testing"
)

func TestBundledBehaviors(t *testing.T) {
	names := Behaviors()
	if len(names) == 0 {
		t.Fatal("Expected at least one bundled behavior")
	}
	for _, n := range names {
		src, err := Behavior(n)
		if err != nil {
			t.Fatalf("Behavior(%q): %v", n, err)
		}
		if len(src) == 0 {
			t.Errorf("Expected non-empty source for %q", n)
		}
	}
}

func TestBehaviorMissing(t *testing.T) {
	_, err := Behavior("no-such-behavior")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}
