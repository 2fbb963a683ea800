package ports

import (
	"context"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

// ReadingStore persists reading history.
type ReadingStore interface {
	// Create stores r. ID and timestamps are assigned by the caller.
	Create(ctx context.Context, r domain.Reading) error
	Get(ctx context.Context, id string) (domain.Reading, error)
	// List returns readings newest first. An empty sessionID lists all.
	List(ctx context.Context, sessionID string, limit int) ([]domain.Reading, error)
	Delete(ctx context.Context, id string) error
}
