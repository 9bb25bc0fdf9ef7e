package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/julianstephens/duogoals/internal/logger"
)

// FileStore keeps every slot in one JSON object on disk, key to serialized value.
type FileStore struct {
	path  string
	mu    sync.Mutex
	slots map[string]string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (s *FileStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w at %s", ErrAlreadyInitialized, s.path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = make(map[string]string)
	return s.save()
}

// Load reads the slot file. A missing file is an empty store. An unparsable
// file is moved aside to <path>.corrupt and the store starts empty.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.slots = make(map[string]string)
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	slots := make(map[string]string)
	if err := json.Unmarshal(data, &slots); err != nil {
		logger.Warn("Storage file is malformed, starting empty", "path", s.path, "error", err)
		if err := os.WriteFile(s.CorruptPath(), data, 0600); err != nil {
			logger.Warn("Failed to keep a copy of the malformed storage file", "path", s.CorruptPath(), "error", err)
		}
		slots = make(map[string]string)
	}
	s.slots = slots
	return nil
}

// CorruptPath is where Load keeps an unparsable storage file.
func (s *FileStore) CorruptPath() string {
	return s.path + ".corrupt"
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slots == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	value, ok := s.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *FileStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slots == nil {
		return fmt.Errorf("storage not loaded")
	}

	prev, existed := s.slots[key]
	s.slots[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.slots[key] = prev
		} else {
			delete(s.slots, key)
		}
		return err
	}
	return nil
}

// save writes to a temp file in the same directory and renames it over the target.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set storage permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *FileStore) GetConfigPath() string {
	return s.path
}
