package decks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

//go:embed data/*.json
var deckFS embed.FS

const catalogFile = "data/cards.json"

// EmbeddedStore serves the card catalog from the embedded JSON file.
type EmbeddedStore struct {
	once   sync.Once
	cards  []domain.Card
	byID   map[int]int
	byName map[string]int
	err    error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := deckFS.ReadFile(catalogFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded catalog: %w", err)
		return
	}
	var cards []domain.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		s.err = fmt.Errorf("parse embedded catalog: %w", err)
		return
	}
	s.cards = cards
	s.byID = make(map[int]int, len(cards))
	s.byName = make(map[string]int, len(cards))
	for i, c := range cards {
		s.byID[c.ID] = i
		s.byName[strings.ToLower(c.Name)] = i
		if c.KoreanName != "" {
			s.byName[c.KoreanName] = i
		}
	}
}

// Cards returns a copy of the full catalog in ID order.
func (s *EmbeddedStore) Cards(_ context.Context) ([]domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Card, len(s.cards))
	copy(out, s.cards)
	return out, nil
}

func (s *EmbeddedStore) CardByID(_ context.Context, id int) (domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Card{}, s.err
	}
	i, ok := s.byID[id]
	if !ok {
		return domain.Card{}, domain.ErrCardNotFound
	}
	return s.cards[i], nil
}

// CardByName matches the English name case-insensitively or the Korean name exactly.
func (s *EmbeddedStore) CardByName(_ context.Context, name string) (domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Card{}, s.err
	}
	i, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		i, ok = s.byName[strings.TrimSpace(name)]
	}
	if !ok {
		return domain.Card{}, domain.ErrCardNotFound
	}
	return s.cards[i], nil
}
