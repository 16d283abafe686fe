package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists the credential in a plain file with 0600 permissions.
// It is the desktop analogue of a browser's localStorage token slot: the
// token survives process restarts and absence of the file means logged out.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultCredentialFile returns the conventional credential location under
// the user's config directory.
func DefaultCredentialFile(appName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolve config dir: %w", ErrStorageFailed, err)
	}
	return filepath.Join(dir, appName, "credential"), nil
}

// NewFileStore creates a file-backed credential store at the given path.
// The parent directory is created lazily on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted credential. A missing file maps to ErrNotFound.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// Save writes the credential atomically via a temp file rename so a crash
// mid-write can never leave a truncated token behind.
func (s *FileStore) Save(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".credential-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(token); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	return nil
}

// Clear removes the credential file. Removing a missing file is a no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	return nil
}
