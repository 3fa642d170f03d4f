package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "star-dash.toml")
	if err := os.WriteFile(path, []byte("[physics]\ngravity = 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[physics]\ngravity = 0.6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Physics.Gravity != 0.6 {
			t.Errorf("Expected gravity 0.6, got %.2f", cfg.Physics.Gravity)
		}
	case err := <-w.Errors:
		t.Fatalf("Expected update, got error %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}

	if err := os.WriteFile(path, []byte("[physics]\nfriction = 2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-w.Errors:
		if err == nil {
			t.Error("Expected validation error")
		}
	case cfg := <-w.Updates:
		t.Fatalf("Expected invalid config rejected, got %+v", cfg.Physics)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for rejection")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "star-dash.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cfg := <-w.Updates:
		t.Errorf("Expected no update for sibling file, got %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if _, ok := <-w.Updates; ok {
		t.Error("Expected Updates closed")
	}
}
