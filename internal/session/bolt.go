package session

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketSessions = []byte("sessions")

// BoltStore persists session state in a bbolt database so conversations
// survive restarts. Values are JSON-serialized State. Writes are
// transactional; a crash mid-write cannot corrupt previously committed
// sessions.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) a bbolt database at path and ensures the
// sessions bucket exists.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSessions)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Get returns the state for id, or nil if the session is unknown.
func (s *BoltStore) Get(id string) (*State, error) {
	var st *State
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSessions).Get([]byte(id))
		if raw == nil {
			return nil
		}
		st = &State{}
		if err := json.Unmarshal(raw, st); err != nil {
			return fmt.Errorf("unmarshal session %q: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Put stores st under id, replacing any previous state.
func (s *BoltStore) Put(id string, st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session %q: %w", id, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).Put([]byte(id), raw)
	})
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
