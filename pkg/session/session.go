// Package session persists navigation sessions across runs.
//
// A Session captures what a nav controller can rebuild its stack from: the
// record ID sequence bottom-to-top plus the direction, with save and expiry
// times around it. Payloads are never serialized - they are live
// application objects. On restore the application resolves each ID back to
// a payload and hands the result to [nav.Controller.Restore].
//
// Store implementations live in subpackages:
//   - memory: in-memory storage for tests and single-run apps
//   - file: JSON files for CLI applications
//   - redis: Redis-backed storage for hosts running many sessions
//   - mongo: MongoDB-backed storage where sessions live next to app data
//
// # Usage
//
// Save on the way out:
//
//	store, err := file.NewStore("") // ~/.config/navstack/sessions/
//	if err != nil {
//	    return err
//	}
//	sess := session.Capture("demo", ctrl.State(), session.DefaultTTL)
//	store.Set(ctx, sess)
//
// Restore on the way back in:
//
//	sess, err := store.Get(ctx, "demo")
//	if err != nil {
//	    return err
//	}
//	recs := session.Records(sess, resolveScreen) // nil sess is fine
//	ctrl.Restore(recs)
package session

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/navstack/pkg/nav"
)

// DefaultTTL is the default session lifetime. Navigation sessions are
// resume points, not credentials, so they live for a week.
const DefaultTTL = 7 * 24 * time.Hour

// Session stores one navigation stack's resume data.
type Session struct {
	ID        string        `json:"id"`
	IDs       []string      `json:"ids,omitempty"` // record IDs bottom-to-top
	Direction nav.Direction `json:"direction"`
	SavedAt   time.Time     `json:"saved_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Capture builds a session with the given ID from a controller state:
//
//	sess := session.Capture("demo", ctrl.State(), session.DefaultTTL)
func Capture(id string, st nav.State, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		IDs:       slices.Clone(st.IDs),
		Direction: st.Direction,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Depth returns the number of saved records.
func (s *Session) Depth() int { return len(s.IDs) }

// Records converts the saved ID sequence into stack records, resolving each
// ID to its payload with resolve. Resolution stops at the first ID resolve
// rejects: a destination the application no longer knows invalidates
// everything stacked on top of it, so the longest valid prefix wins.
// A nil session yields nil.
func Records[T any](s *Session, resolve func(id string) (T, bool)) []nav.Record[T] {
	if s == nil {
		return nil
	}
	var recs []nav.Record[T]
	for _, id := range s.IDs {
		payload, ok := resolve(id)
		if !ok {
			break
		}
		recs = append(recs, nav.Record[T]{ID: id, Payload: payload})
	}
	return recs
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session, replacing any previous one with the same ID.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all live sessions, sorted.
	List(ctx context.Context) ([]string, error)

	// Cleanup removes expired sessions (may be a no-op where the backend
	// expires entries itself).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
