// Package storage persists the task list as a single human-readable JSON
// document. Every operation reads or rewrites the whole file; there is no
// partial update.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"todo/internal/fsutil"
)

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600
)

// Storage handles all file I/O for the task list.
type Storage struct {
	path string
}

// New creates a Storage backed by the file at path, creating the parent
// directory if needed. The file itself is created lazily on first save.
func New(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Storage{path: path}, nil
}

// Path returns the location of the backing file.
func (s *Storage) Path() string {
	return s.path
}

// Load returns the persisted task list. A missing, unreadable, or malformed
// file degrades to an empty list: reading never fails, so a corrupted file
// cannot block the user. The fallback branches are deliberately explicit
// rather than hidden behind ignored errors.
func (s *Storage) Load() []Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Absent or unreadable: start from nothing.
		return []Task{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []Task{}
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		// Malformed document: same silent degradation as a missing file.
		return []Task{}
	}
	if tasks == nil {
		// A literal "null" parses successfully to a nil slice.
		return []Task{}
	}
	return tasks
}

// Save rewrites the full task list, replacing prior contents atomically.
// The document is indented with two spaces and non-ASCII text is stored
// literally. A save error is fatal at the process level; callers must not
// continue as if the write succeeded.
func (s *Storage) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("serialize tasks: %w", err)
	}

	// Keep a best-effort backup of the previous contents before overwriting.
	fsutil.BestEffortBackup(s.path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(s.path, buf.Bytes(), dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
