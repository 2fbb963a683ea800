package ports

import (
	"context"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

// CardCatalog provides access to the card catalog.
type CardCatalog interface {
	Cards(ctx context.Context) ([]domain.Card, error)
	CardByID(ctx context.Context, id int) (domain.Card, error)
	CardByName(ctx context.Context, name string) (domain.Card, error)
}
