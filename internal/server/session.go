package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luminghao/godcps/internal/load"
)

// SessionMaxAge is how long an idle session is kept before cleanup.
const SessionMaxAge = 30 * time.Minute

// Session owns one isolated load collection. No two sessions ever share a
// collection; all access goes through the session's lock.
type Session struct {
	ID           string
	Loads        *load.Set
	LastAccessed time.Time

	mu sync.Mutex
}

// Lock acquires the session for mutation or computation.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionManager tracks active sessions.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Create starts a new session with an empty load collection.
func (m *SessionManager) Create() *Session {
	s := &Session{
		ID:           uuid.New().String(),
		Loads:        load.NewSet(),
		LastAccessed: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id and refreshes its last-access
// time.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.Lock()
		s.LastAccessed = time.Now()
		s.Unlock()
	}
	return s, ok
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanupOldSessions drops sessions idle for longer than maxAge and
// returns how many were removed.
func (m *SessionManager) CleanupOldSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		s.Lock()
		stale := s.LastAccessed.Before(cutoff)
		s.Unlock()
		if stale {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
