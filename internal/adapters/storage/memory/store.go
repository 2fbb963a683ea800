// Package memory is an in-process ReadingStore for development and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

// Store holds readings in memory.
type Store struct {
	mu       sync.RWMutex
	readings map[string]domain.Reading
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{readings: make(map[string]domain.Reading)}
}

func (s *Store) Create(_ context.Context, r domain.Reading) error {
	s.mu.Lock()
	s.readings[r.ID] = r
	s.mu.Unlock()
	return nil
}

func (s *Store) Get(_ context.Context, id string) (domain.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.readings[id]
	if !ok {
		return domain.Reading{}, domain.ErrReadingNotFound
	}
	return r, nil
}

// List returns readings most recent first, optionally filtered by session.
// A limit <= 0 means no limit.
func (s *Store) List(_ context.Context, sessionID string, limit int) ([]domain.Reading, error) {
	s.mu.RLock()
	list := make([]domain.Reading, 0, len(s.readings))
	for _, r := range s.readings {
		if sessionID == "" || r.SessionID == sessionID {
			list = append(list, r)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(list, func(a, b domain.Reading) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.readings[id]; !ok {
		return domain.ErrReadingNotFound
	}
	delete(s.readings, id)
	return nil
}
