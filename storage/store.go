// Package storage persists retrieval results as one JSON file per video.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store writes retrieval results under a single output directory. Writes are
// atomic (temp file + rename) so a crash never leaves a half-written record.
type Store struct {
	dir    string
	logger *slog.Logger
}

// StorageError wraps a failed storage operation.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

// Error returns a string representation of the storage error.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// New creates the output directory if needed and returns a store bound to it.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, &StorageError{Op: "init", Path: dir, Err: fmt.Errorf("output directory is required")}
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Op: "init", Path: dir, Err: err}
	}

	return &Store{dir: dir, logger: logger}, nil
}

// Path returns the file a result will be saved to: <dir>/<video_id>.json, or
// <dir>/unknown.json when the input never resolved to an ID.
func (s *Store) Path(r Result) string {
	id := r.VideoID()
	if id == "" {
		id = "unknown"
	}
	return filepath.Join(s.dir, id+".json")
}

// Save writes the result as pretty-printed UTF-8 JSON. Non-ASCII text is
// preserved un-escaped.
func (s *Store) Save(r Result) error {
	path := s.Path(r)

	tmp, err := os.CreateTemp(s.dir, ".ytscribe-*.tmp")
	if err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: path, Err: err}
	}

	s.logger.Debug("saved result", "path", path)
	return nil
}
