package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/logger"
	"wirralclean/internal/models"
)

// SessionStore keeps per-visitor widget state.
// Update runs fn against the current session and saves the result only when fn returns nil.
type SessionStore interface {
	Get(ctx context.Context, visitorID string) (models.VisitorSession, error)
	Update(ctx context.Context, visitorID string, fn func(*models.VisitorSession) error) (models.VisitorSession, error)
	Delete(ctx context.Context, visitorID string) error
}

// MemorySessionStore holds sessions in process memory.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.VisitorSession // Key: visitorID
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore creates a store that drops sessions idle for longer than ttl.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*models.VisitorSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// getSession returns the session for a visitor, creating one if it doesn't exist.
// Callers must hold the write lock.
func (s *MemorySessionStore) getSession(visitorID string) *models.VisitorSession {
	session, exists := s.sessions[visitorID]
	if !exists {
		fresh := models.NewVisitorSession()
		session = &fresh
		s.sessions[visitorID] = session
	}
	session.LastActivity = s.now()
	return session
}

// Get returns a copy of the visitor's session.
func (s *MemorySessionStore) Get(_ context.Context, visitorID string) (models.VisitorSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSession(*s.getSession(visitorID)), nil
}

// Update applies fn to a working copy and stores it if fn succeeds.
func (s *MemorySessionStore) Update(_ context.Context, visitorID string, fn func(*models.VisitorSession) error) (models.VisitorSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.getSession(visitorID)
	working := cloneSession(*current)
	if err := fn(&working); err != nil {
		return cloneSession(*current), err
	}
	*current = working
	return cloneSession(working), nil
}

// Delete removes all state for a visitor.
func (s *MemorySessionStore) Delete(_ context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, visitorID)
	logger.Infof("Cleared session for visitor: %s", visitorID)
	return nil
}

// Len reports how many sessions are held.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CleanUpInactiveSessions removes sessions idle for longer than the store TTL.
func (s *MemorySessionStore) CleanUpInactiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := s.now().Add(-s.ttl)
	for visitorID, session := range s.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(s.sessions, visitorID)
			removed++
		}
	}
	return removed
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (s *MemorySessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.CleanUpInactiveSessions(); n > 0 {
				logger.Infof("Performed cleanup of inactive sessions: removed %d", n)
			}
		}
	}
}

func cloneSession(in models.VisitorSession) models.VisitorSession {
	out := in
	out.Calculator.Rooms = slices.Clone(in.Calculator.Rooms)
	if out.Calculator.Rooms == nil {
		out.Calculator.Rooms = []string{}
	}
	if in.Wheel.SegmentID != nil {
		id := *in.Wheel.SegmentID
		out.Wheel.SegmentID = &id
	}
	return out
}
