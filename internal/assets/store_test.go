package assets

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestSaveAndList(t *testing.T) {
	s := tempStore(t)

	if _, err := s.Save("photo.png", strings.NewReader("fake-png")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("cover.jpg", strings.NewReader("fake-jpg")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.List()
	want := []string{"cover.jpg", "photo.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List = %v, want %v", got, want)
	}

	abs, err := s.Path("photo.png")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	data, _ := os.ReadFile(abs)
	if string(data) != "fake-png" {
		t.Errorf("content = %q", data)
	}
}

func TestSaveRejectsTraversalAndBadTypes(t *testing.T) {
	s := tempStore(t)

	for _, name := range []string{"../escape.png", "a/b.png", "..", ""} {
		if _, err := s.Save(name, strings.NewReader("x")); err == nil {
			t.Errorf("Save(%q) should fail", name)
		}
	}
	if _, err := s.Save("script.sh", strings.NewReader("x")); err == nil {
		t.Error("unsupported extension should be rejected")
	}
}

func TestPathMissingFile(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Path("nope.png"); err == nil {
		t.Error("missing asset should error")
	}
}

func TestRemove(t *testing.T) {
	s := tempStore(t)
	_, _ = s.Save("gone.png", strings.NewReader("x"))
	if err := s.Remove("gone.png"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(s.List()) != 0 {
		t.Errorf("List = %v", s.List())
	}
}

func TestRescanIgnoresForeignFiles(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(filepath.Join(s.Root(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Rescan(); err != nil {
		t.Fatalf("Rescan: %v", err)
	}
	if len(s.List()) != 0 {
		t.Errorf("List = %v, want no entries", s.List())
	}
}

func TestWatchPicksUpExternalFile(t *testing.T) {
	s := tempStore(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Watch(ctx, s, logger)
	}()

	// Write a file directly, bypassing Save.
	if err := os.WriteFile(filepath.Join(s.Root(), "external.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if len(s.List()) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("watcher never picked up file, list = %v", s.List())
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
