// Package store provides the process-lifetime session store. Sessions are
// never evicted; durability is the persistence layer's concern.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ailiteracy/internal/model"
)

// ErrSessionNotFound is returned for unrecognized session ids
var ErrSessionNotFound = errors.New("session not found")

// SessionStore is an in-memory map from session id to session state. The
// mutex guards the map itself; turns against the same session are expected
// to be serialized by the caller.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*model.Session)}
}

// Create allocates a new session with a fresh id
func (s *SessionStore) Create() *model.Session {
	sess := &model.Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Scores:    make(map[string]int),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for id, or ErrSessionNotFound
func (s *SessionStore) Get(id string) (*model.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Len reports the number of sessions ever created in this process
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
