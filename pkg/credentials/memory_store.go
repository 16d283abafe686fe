package credentials

import (
	"strings"
	"sync"
)

// MemoryStore implements Store in memory. Intended for tests and for
// embedding scenarios where the host application owns persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored credential or ErrNotFound.
func (s *MemoryStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return "", ErrNotFound
	}
	return s.token, nil
}

// Save stores the credential.
func (s *MemoryStore) Save(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true
	return nil
}

// Clear removes the credential.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false
	return nil
}
