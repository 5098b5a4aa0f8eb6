package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"agenda/internal/event"
)

// FileStore persists event records to a single JSON file.
//
// It implements calendar.Storage. One running instance owns the file;
// there is no cross-process locking, and concurrent writers are
// last-writer-wins.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// not touched until Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads and decodes the full record set.
//
// An absent file yields (nil, nil). A file that exists but is not a
// JSON array of records yields a decode error with the path in the
// message.
func (s *FileStore) Load() ([]event.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var recs []event.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return recs, nil
}

// Save atomically replaces the file with the given records.
//
// The parent directory is created if missing. The new contents are
// written to a temp file in the same directory, synced, chmodded 0600,
// and renamed over the target, so a crash never leaves a partial file.
func (s *FileStore) Save(recs []event.Record) error {
	if recs == nil {
		recs = []event.Record{}
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".agenda-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any failure before the rename.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
