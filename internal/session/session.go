// Package session tracks a reading in progress through its phases:
// spread-selection, question, selection and result.
package session

import (
	"fmt"
	"time"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

// Phase is a step of the reading flow.
type Phase string

const (
	PhaseSpreadSelection Phase = "spread-selection"
	PhaseQuestion        Phase = "question"
	PhaseSelection       Phase = "selection"
	PhaseResult          Phase = "result"
)

const maxQuestionRunes = 500

// Session is a single reading in progress. It is not safe for concurrent
// use; Store serialises access.
type Session struct {
	ID             string             `json:"id"`
	Phase          Phase              `json:"phase"`
	Spread         *domain.Spread     `json:"spread,omitempty"`
	Question       string             `json:"question,omitempty"`
	Category       domain.Category    `json:"category,omitempty"`
	Pool           []domain.Card      `json:"-"`
	Picked         []domain.DrawnCard `json:"picked"`
	Interpretation string             `json:"interpretation,omitempty"`
	ReadingID      string             `json:"reading_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	deck []domain.Card
}

// New starts a session over deck in the spread-selection phase.
func New(id string, deck []domain.Card, now time.Time) *Session {
	return &Session{
		ID:        id,
		Phase:     PhaseSpreadSelection,
		CreatedAt: now,
		UpdatedAt: now,
		deck:      deck,
	}
}

// PoolSize is the number of face-down cards still available to pick.
func (s *Session) PoolSize() int { return len(s.Pool) }

// Remaining is the number of picks left before the spread is complete.
func (s *Session) Remaining() int {
	if s.Spread == nil {
		return 0
	}
	return s.Spread.CardCount - len(s.Picked)
}

// SelectSpread chooses the layout and moves to the question phase.
func (s *Session) SelectSpread(sp domain.Spread, now time.Time) error {
	if err := s.expect(PhaseSpreadSelection); err != nil {
		return err
	}
	s.Spread = &sp
	return s.advance(PhaseQuestion, now)
}

// AskQuestion records the question and its category, shuffles the pool and
// moves to card selection.
func (s *Session) AskQuestion(question string, category domain.Category, rng domain.RNG, now time.Time) error {
	if err := s.expect(PhaseQuestion); err != nil {
		return err
	}
	if question == "" {
		return domain.ErrEmptyQuestion
	}
	if len([]rune(question)) > maxQuestionRunes {
		return domain.ErrQuestionTooLong
	}
	s.Question = question
	s.Category = category
	s.Pool = domain.Shuffle(s.deck, rng)
	return s.advance(PhaseSelection, now)
}

// Pick turns over the pool card at index, resolving its orientation. The
// session stays in selection; Complete moves it to result.
func (s *Session) Pick(index int, rng domain.RNG, now time.Time) (domain.DrawnCard, error) {
	if err := s.expect(PhaseSelection); err != nil {
		return domain.DrawnCard{}, err
	}
	if s.Remaining() <= 0 {
		return domain.DrawnCard{}, fmt.Errorf("%w: spread already complete", domain.ErrInvalidTransition)
	}
	if index < 0 || index >= len(s.Pool) {
		return domain.DrawnCard{}, domain.ErrInvalidPick
	}

	c := s.Pool[index]
	s.Pool = append(s.Pool[:index:index], s.Pool[index+1:]...)

	dc := domain.NewDrawnCard(c, domain.ResolveOrientation(c, rng))
	dc.Position = len(s.Picked) + 1
	s.Picked = append(s.Picked, dc)
	s.UpdatedAt = now
	return dc, nil
}

// Reshuffle replaces the pool with a fresh shuffle of every card not yet
// picked. Picked cards are kept.
func (s *Session) Reshuffle(rng domain.RNG, now time.Time) error {
	if err := s.expect(PhaseSelection); err != nil {
		return err
	}
	picked := make(map[int]bool, len(s.Picked))
	for _, dc := range s.Picked {
		picked[dc.ID] = true
	}
	rest := make([]domain.Card, 0, len(s.deck))
	for _, c := range s.deck {
		if !picked[c.ID] {
			rest = append(rest, c)
		}
	}
	s.Pool = domain.Shuffle(rest, rng)
	s.UpdatedAt = now
	return nil
}

// Complete stores the composed interpretation and moves to result. Every
// spread position must have been picked.
func (s *Session) Complete(interpretation string, now time.Time) error {
	if err := s.expect(PhaseSelection); err != nil {
		return err
	}
	if s.Remaining() > 0 {
		return domain.ErrSelectionIncomplete
	}
	s.Interpretation = interpretation
	return s.advance(PhaseResult, now)
}

// Reset discards all progress and returns to spread selection. It is valid
// from every phase.
func (s *Session) Reset(now time.Time) {
	s.Phase = PhaseSpreadSelection
	s.Spread = nil
	s.Question = ""
	s.Category = ""
	s.Pool = nil
	s.Picked = nil
	s.Interpretation = ""
	s.ReadingID = ""
	s.UpdatedAt = now
}

func (s *Session) expect(p Phase) error {
	if s.Phase != p {
		return fmt.Errorf("%w: in %s, need %s", domain.ErrInvalidTransition, s.Phase, p)
	}
	return nil
}

func (s *Session) advance(p Phase, now time.Time) error {
	s.Phase = p
	s.UpdatedAt = now
	return nil
}
