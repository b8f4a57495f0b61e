package session

import "sync"

// Store is the key-value contract for session state. Get returns nil (and
// no error) for an unknown id: sessions are created lazily by the caller on
// first turn. No eviction policy is defined here; lifecycle belongs to
// whoever owns the store.
type Store interface {
	Get(id string) (*State, error)
	Put(id string, st *State) error
	Close() error
}

// MemoryStore keeps session state in a process-local map. Safe for
// concurrent use across session ids.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*State)}
}

// Get returns the state for id, or nil if the session is unknown.
func (s *MemoryStore) Get(id string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id], nil
}

// Put stores st under id, replacing any previous state.
func (s *MemoryStore) Put(id string, st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = st
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
