package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"banner.png", "banner.png"},
		{"../../etc/passwd", "passwd"},
		{"my photo (1).jpg", "my_photo_1.jpg"},
		{"한글이름.png", ".png"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLocalStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	if err := store.Save("a.png", strings.NewReader("content")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "a.png"))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("unexpected file content %q", data)
	}

	if err := store.Remove("a.png"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Removing a file that is already gone is not an error
	if err := store.Remove("a.png"); err != nil {
		t.Errorf("Remove of missing file should be nil, got %v", err)
	}
}

func TestLocalStoreRemoveRejectsNonBasename(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	for _, name := range []string{"", ".", "..", "a/b", "/abs"} {
		if err := store.Remove(name); err == nil {
			t.Errorf("Remove(%q) should be rejected", name)
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("upload directory must survive rejected removals, stat err: %v", err)
	}
}

func TestNewLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocalStore(dir); err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("expected upload dir to exist, err %v", err)
	}
}
