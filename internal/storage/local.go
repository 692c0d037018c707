// Package storage persists uploaded image files on local disk under the
// configured upload directory, from which they are served as static files.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type FileStore interface {
	Save(filename string, src io.Reader) error
	// Remove deletes the named file. A file that is already gone is not
	// an error; the row it backed may outlive it.
	Remove(filename string) error
}

type localStore struct {
	dir string
}

func NewLocalStore(dir string) (FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) Save(filename string, src io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

func (s *localStore) Remove(filename string) error {
	// Only bare filenames are valid; anything else could name the upload
	// directory itself or a path outside it.
	if filename == "" || filename == "." || filename == ".." || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid filename %q", filename)
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", filename, err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips any path component and characters that are not
// safe in a URL path segment.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeFilenameChars.ReplaceAllString(name, "")
}
