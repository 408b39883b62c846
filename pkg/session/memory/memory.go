// Package memory provides an in-memory session store for tests and
// single-run applications. Nothing survives the process.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/navstack/pkg/session"
)

// Store keeps sessions in a map. It is safe for concurrent use, and
// sessions are copied on the way in and out so callers can keep mutating
// their own values.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewStore creates an empty in-memory session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*session.Session)}
}

// Get retrieves a session by ID. Missing and expired sessions both return
// nil, nil; expired entries are dropped on the way.
func (s *Store) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if sess.IsExpired() {
		delete(s.sessions, id)
		return nil, nil
	}
	return copySession(sess), nil
}

// Set stores a session, replacing any previous one with the same ID.
func (s *Store) Set(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = copySession(sess)
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// List returns the IDs of all live sessions, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	now := time.Now()
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Cleanup removes expired sessions.
func (s *Store) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func copySession(sess *session.Session) *session.Session {
	c := *sess
	c.IDs = slices.Clone(sess.IDs)
	return &c
}

var _ session.Store = (*Store)(nil)
