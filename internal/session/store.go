package session

import (
	"sync"
	"time"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

// Store holds sessions in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Put adds or replaces a session.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, domain.ErrSessionNotFound
	}
	return sess.snapshot(), nil
}

// Update runs fn on the session under the store lock and returns a snapshot
// of the result. fn's error is returned as is; the session keeps whatever
// changes fn made before failing.
func (s *Store) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, domain.ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return sess.snapshot(), err
	}
	return sess.snapshot(), nil
}

// Delete removes a session. Unknown IDs are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Prune drops sessions not updated since cutoff and reports how many went.
func (s *Store) Prune(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Session) snapshot() Session {
	out := *s
	out.Pool = append([]domain.Card(nil), s.Pool...)
	out.Picked = append([]domain.DrawnCard(nil), s.Picked...)
	if s.Spread != nil {
		sp := *s.Spread
		out.Spread = &sp
	}
	return out
}
