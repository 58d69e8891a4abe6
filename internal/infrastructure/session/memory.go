package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Used in development
// and tests; sessions do not survive restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	stop     chan struct{}
	stopOnce sync.Once
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store with a background
// janitor that evicts expired entries.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]memoryEntry),
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Save stores the session under its token with the given TTL
func (s *MemoryStore) Save(_ context.Context, session *Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = memoryEntry{
		session:   *session,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get loads a session by token
func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}

	session := entry.session
	return &session, nil
}

// Delete removes a session
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Close stops the janitor goroutine
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for token, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}

var _ Store = (*MemoryStore)(nil)
