package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the single process-wide token slot. Load returns
// ("", nil) when nothing is stored; an empty slot is an expected state,
// not an error.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in one file under the user config dir.
// Writes go through a temp file and rename so a crash mid-write leaves
// either the old token or the new one, never a torn file.
type FileStore struct {
	path string
}

// NewFileStore resolves the token path. An empty path means the default
// location ($XDG_CONFIG_HOME/univerdog/token or the OS equivalent).
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		path = filepath.Join(dir, "univerdog", "token")
	}
	return &FileStore{path: path}, nil
}

// Path reports where the token lives on disk.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit token file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// MemoryStore is the test double: same contract, no disk.
type MemoryStore struct {
	token string
}

func (s *MemoryStore) Load() (string, error) { return s.token, nil }

func (s *MemoryStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.token = ""
	return nil
}
