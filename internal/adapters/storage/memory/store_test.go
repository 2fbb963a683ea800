package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

func reading(id, session string, at time.Time) domain.Reading {
	return domain.Reading{
		ID:             id,
		SessionID:      session,
		Question:       "오늘의 운세는?",
		SpreadType:     "one-card",
		Interpretation: "text",
		QuestionType:   domain.CategoryGeneral,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

func TestCreateAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()

	if err := s.Create(ctx, reading("r1", "s1", now)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Question != "오늘의 운세는?" {
		t.Fatalf("unexpected question: %s", got.Question)
	}
	if _, err := s.Get(ctx, "nope"); err != domain.ErrReadingNotFound {
		t.Fatalf("expected ErrReadingNotFound, got %v", err)
	}
}

func TestListNewestFirstAndFiltered(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_ = s.Create(ctx, reading("old", "s1", base))
	_ = s.Create(ctx, reading("mid", "s2", base.Add(time.Hour)))
	_ = s.Create(ctx, reading("new", "s1", base.Add(2*time.Hour)))

	all, _ := s.List(ctx, "", 0)
	if len(all) != 3 || all[0].ID != "new" || all[2].ID != "old" {
		t.Fatalf("unexpected order: %+v", ids(all))
	}

	s1, _ := s.List(ctx, "s1", 0)
	if len(s1) != 2 || s1[0].ID != "new" {
		t.Fatalf("unexpected session filter: %+v", ids(s1))
	}

	limited, _ := s.List(ctx, "", 1)
	if len(limited) != 1 || limited[0].ID != "new" {
		t.Fatalf("unexpected limit result: %+v", ids(limited))
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.Create(ctx, reading("r1", "s1", time.Now()))

	if err := s.Delete(ctx, "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete(ctx, "r1"); err != domain.ErrReadingNotFound {
		t.Fatalf("expected ErrReadingNotFound, got %v", err)
	}
}

func TestConcurrentCreate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Create(ctx, reading(string(rune('a'+i)), "s", time.Now()))
		}(i)
	}
	wg.Wait()

	list, _ := s.List(ctx, "s", 0)
	if len(list) != 50 {
		t.Fatalf("expected 50 readings, got %d", len(list))
	}
}

func ids(rs []domain.Reading) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}
