package app

import (
	"context"
	"fmt"
	"time"

	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
	"github.com/randomtoy/tarot-reader/internal/session"
)

// StartSession opens a new guided reading over the full catalog.
func (s *TarotService) StartSession(ctx context.Context) (session.Session, error) {
	deck, err := s.catalog.Cards(ctx)
	if err != nil {
		return session.Session{}, fmt.Errorf("load cards: %w", err)
	}
	sess := session.New(s.newID(), deck, s.now())
	s.sessions.Put(sess)
	return s.sessions.Get(sess.ID)
}

func (s *TarotService) GetSession(_ context.Context, id string) (session.Session, error) {
	return s.sessions.Get(id)
}

func (s *TarotService) SelectSpread(_ context.Context, id string, spread domain.SpreadType) (session.Session, error) {
	sp, err := domain.SpreadByID(spread)
	if err != nil {
		return session.Session{}, err
	}
	return s.sessions.Update(id, func(sess *session.Session) error {
		return sess.SelectSpread(sp, s.now())
	})
}

// AskQuestion records the question, classifies it and opens card selection.
func (s *TarotService) AskQuestion(_ context.Context, id, question string) (session.Session, error) {
	category := interpret.Classify(question)
	return s.sessions.Update(id, func(sess *session.Session) error {
		return sess.AskQuestion(question, category, s.rng, s.now())
	})
}

// Pick turns over a card. The pick that fills the last position composes
// the interpretation, moves the session to result and saves the reading.
func (s *TarotService) Pick(ctx context.Context, id string, index int) (PickResponse, error) {
	var (
		drawn    domain.DrawnCard
		res      interpret.Result
		complete bool
	)
	snap, err := s.sessions.Update(id, func(sess *session.Session) error {
		dc, err := sess.Pick(index, s.rng, s.now())
		if err != nil {
			return err
		}
		drawn = dc
		if sess.Remaining() > 0 {
			return nil
		}

		res = s.composer.Build(sess.Spread.ID, sess.Picked, sess.Question, sess.Category)
		if err := sess.Complete(res.Text, s.now()); err != nil {
			return err
		}
		sess.ReadingID = s.newID()
		complete = true
		return nil
	})
	if err != nil {
		return PickResponse{}, err
	}

	out := PickResponse{Session: snap, Card: drawn}
	if !complete {
		return out, nil
	}

	narrative, _ := s.narrate(ctx, *snap.Spread, snap.Question, res)
	r := domain.Reading{
		ID:             snap.ReadingID,
		SessionID:      snap.ID,
		Question:       snap.Question,
		SpreadType:     string(snap.Spread.ID),
		Cards:          snap.Picked,
		Interpretation: snap.Interpretation,
		QuestionType:   snap.Category,
		Narrative:      narrative,
		CreatedAt:      snap.UpdatedAt,
		UpdatedAt:      snap.UpdatedAt,
	}
	if err := s.readings.Create(ctx, r); err != nil {
		// The reading was never stored; drop the id so the session does not point at it.
		if cleared, uerr := s.sessions.Update(id, func(sess *session.Session) error {
			sess.ReadingID = ""
			return nil
		}); uerr == nil {
			out.Session = cleared
		}
		return out, fmt.Errorf("save reading: %w", err)
	}
	out.Reading = &r
	return out, nil
}

func (s *TarotService) Reshuffle(_ context.Context, id string) (session.Session, error) {
	return s.sessions.Update(id, func(sess *session.Session) error {
		return sess.Reshuffle(s.rng, s.now())
	})
}

func (s *TarotService) ResetSession(_ context.Context, id string) (session.Session, error) {
	return s.sessions.Update(id, func(sess *session.Session) error {
		sess.Reset(s.now())
		return nil
	})
}

// PruneSessions drops sessions idle for longer than maxAge.
func (s *TarotService) PruneSessions(maxAge time.Duration) int {
	return s.sessions.Prune(s.now().Add(-maxAge))
}
