package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"fixturecal/internal/domain"
)

// FSStore keeps the state as one JSON document on disk, replaced atomically
// (temp file + rename) so a crashed run never leaves a partial file.
type FSStore struct {
	path string
}

// NewFSStore constructs a store writing to path.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path}
}

// Load reads the state file. A missing file yields an empty state.
func (s *FSStore) Load() (domain.State, error) {
	if s == nil || s.path == "" {
		return nil, errors.New("state store not configured")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.State{}, nil
		}
		return nil, err
	}
	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state == nil {
		state = domain.State{}
	}
	return state, nil
}

// Save replaces the state file. Identical content skips the write so the
// file's mtime only moves when something changed.
func (s *FSStore) Save(state domain.State) error {
	if s == nil || s.path == "" {
		return errors.New("state store not configured")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
