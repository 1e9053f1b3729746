// Package assets stores uploaded portfolio images in a flat directory and
// keeps an in-memory listing for the admin image pickers.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// allowedExt lists the upload formats the admin forms accept.
var allowedExt = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".svg": {}, ".pdf": {},
}

// Store manages the assets directory.
type Store struct {
	root string

	mu    sync.RWMutex
	names []string
}

// NewStore creates the directory if needed and scans existing files.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("assets: mkdir: %w", err)
	}
	s := &Store{root: abs}
	if err := s.Rescan(); err != nil {
		return nil, err
	}
	return s, nil
}

// Root returns the absolute assets directory.
func (s *Store) Root() string { return s.root }

// safeName validates that name is a plain filename with an allowed
// extension and returns its absolute path under the assets directory.
func (s *Store) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("assets: filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("assets: invalid filename: %s", name)
	}
	if _, ok := allowedExt[strings.ToLower(filepath.Ext(cleaned))]; !ok {
		return "", fmt.Errorf("assets: unsupported file type: %s", name)
	}
	abs := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("assets: path escapes assets directory")
	}
	return abs, nil
}

// Save writes an uploaded file and returns the bytes written.
func (s *Store) Save(name string, r io.Reader) (int64, error) {
	abs, err := s.safeName(name)
	if err != nil {
		return 0, err
	}
	dst, err := os.Create(abs)
	if err != nil {
		return 0, fmt.Errorf("assets: create: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, r)
	if err != nil {
		return 0, fmt.Errorf("assets: write: %w", err)
	}
	_ = s.Rescan()
	return written, nil
}

// Path resolves an asset name for serving.
func (s *Store) Path(name string) (string, error) {
	abs, err := s.safeName(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("assets: stat %s: %w", name, err)
	}
	return abs, nil
}

// Remove deletes an asset.
func (s *Store) Remove(name string) error {
	abs, err := s.safeName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("assets: remove %s: %w", name, err)
	}
	return s.Rescan()
}

// List returns the cached asset names, sorted.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Rescan rebuilds the cached listing from disk.
func (s *Store) Rescan() error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return fmt.Errorf("assets: scan: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := allowedExt[strings.ToLower(filepath.Ext(e.Name()))]; !ok {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	s.mu.Lock()
	s.names = names
	s.mu.Unlock()
	return nil
}
