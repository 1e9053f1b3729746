// Package session implements the admin login gate over a single persisted
// session record.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the persisted proof of admin login. Timestamp is epoch
// milliseconds of the moment the login happened.
type Record struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// Store persists the session record as a whole.
type Store interface {
	// Load returns the stored record, or (nil, nil) when none exists.
	// A record that cannot be decoded is reported as an error.
	Load() (*Record, error)
	// Save atomically replaces the stored record.
	Save(Record) error
	// Clear removes the stored record. Clearing an absent record is not
	// an error.
	Clear() error
}

// FileStore keeps the record in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store at path, creating parent directories.
func NewFileStore(path string) (*FileStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("session: resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("session: mkdir: %w", err)
	}
	return &FileStore{path: abs}, nil
}

// Load reads and decodes the record file.
func (s *FileStore) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: read record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("session: decode record: %w", err)
	}
	return &rec, nil
}

// Save writes the record atomically: tmp file → fsync → rename.
func (s *FileStore) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-tmp-*")
	if err != nil {
		return fmt.Errorf("session: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("session: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("session: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("session: rename: %w", err)
	}
	success = true
	return nil
}

// Clear removes the record file.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
