// Package session holds the logged-in alumni identity between calls, the
// role the browser's tab-scoped storage played for the original screens.
// Access goes through the narrow Store interface instead of ambient state.
package session

import (
	"encoding/json"
	"sync"

	"github.com/sreeram/alumnet/pkg/apperrors"
	"github.com/sreeram/alumnet/pkg/models"
)

// Key is the fixed storage key the identity record lives under.
const Key = "alumniData"

// Store persists the current alumni identity. Set overwrites any previous
// identity; Clear removes it entirely. There is no expiry and no refresh —
// the record lives until an explicit logout.
type Store interface {
	// Get returns the stored identity, or apperrors.ErrNoSession when none
	// is stored.
	Get() (*models.Alumni, error)
	// Set replaces the stored identity with the given record.
	Set(alumni *models.Alumni) error
	// Clear removes the stored identity.
	Clear()
}

// MemoryStore keeps the identity in process memory, JSON-serialized under
// the fixed key the way the browser storage held it. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Get returns the stored identity.
func (s *MemoryStore) Get() (*models.Alumni, error) {
	s.mu.RLock()
	raw, ok := s.entries[Key]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNoSession
	}

	var alumni models.Alumni
	if err := json.Unmarshal(raw, &alumni); err != nil {
		return nil, err
	}
	return &alumni, nil
}

// Set replaces the stored identity.
func (s *MemoryStore) Set(alumni *models.Alumni) error {
	raw, err := json.Marshal(alumni)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[Key] = raw
	s.mu.Unlock()
	return nil
}

// Clear removes the stored identity.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	delete(s.entries, Key)
	s.mu.Unlock()
}
