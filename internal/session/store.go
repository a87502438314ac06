// Package session holds per-upload state in memory. Every upload is
// processed against its own isolated engine result; there is no shared
// mutable state between sessions and nothing survives past the TTL.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/ads-renamer/internal/engine"
	"github.com/ignite/ads-renamer/internal/naming"
)

// Session is one upload's processed state: the ranked hierarchy plus the
// user's current naming configuration.
type Session struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Result     *engine.Result
	Scheme     naming.Scheme
	ShortNames naming.ShortNames
}

// Store is an in-memory session registry with TTL-based expiry.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

// NewStore creates a store whose sessions expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session around a ranked result.
func (s *Store) Create(res *engine.Result, scheme naming.Scheme) *Session {
	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Result:    res,
		Scheme:    scheme,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id, if it exists and has not expired.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, false
	}
	return sess, true
}

// Update applies fn to the session under the store lock.
func (s *Store) Update(id uuid.UUID, fn func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return false
	}
	fn(sess)
	return true
}

// Delete discards a session. "Start over" is delete plus a fresh upload.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sess := range s.sessions {
		if !s.expired(sess) {
			n++
		}
	}
	return n
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && time.Since(sess.CreatedAt) > s.ttl
}

// Sweep removes expired sessions and reports how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// StartSweeper runs Sweep on the given interval until ctx is cancelled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Printf("[session] swept %d expired sessions", n)
				}
			}
		}
	}()
}
