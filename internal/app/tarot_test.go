package app_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/randomtoy/tarot-reader/internal/adapters/storage/memory"
	"github.com/randomtoy/tarot-reader/internal/app"
	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/monitor"
	"github.com/randomtoy/tarot-reader/internal/ports"
	"github.com/randomtoy/tarot-reader/internal/session"
)

type mockCatalog struct {
	cards []domain.Card
	err   error
}

func (m *mockCatalog) Cards(_ context.Context) ([]domain.Card, error) {
	return m.cards, m.err
}

func (m *mockCatalog) CardByID(_ context.Context, id int) (domain.Card, error) {
	for _, c := range m.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Card{}, domain.ErrCardNotFound
}

func (m *mockCatalog) CardByName(_ context.Context, name string) (domain.Card, error) {
	for _, c := range m.cards {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Card{}, domain.ErrCardNotFound
}

type mockNarrator struct {
	out   ports.NarrateOutput
	err   error
	calls int
	last  ports.NarrateInput
}

func (m *mockNarrator) Narrate(_ context.Context, in ports.NarrateInput) (ports.NarrateOutput, error) {
	m.calls++
	m.last = in
	return m.out, m.err
}

type failingStore struct{ ports.ReadingStore }

func (failingStore) Create(context.Context, domain.Reading) error {
	return errors.New("disk full")
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testCards() []domain.Card {
	cards := make([]domain.Card, 22)
	for i := range 22 {
		cards[i] = domain.Card{
			ID:                    i,
			Name:                  fmt.Sprintf("Card %d", i),
			KoreanName:            fmt.Sprintf("카드%d", i),
			Suit:                  domain.SuitMajor,
			HasReversal:           true,
			UprightInterpretation: "정방향 해석.",
			UprightKeywords:       []string{"희망"},
			ReversedKeywords:      []string{"지연"},
		}
	}
	return cards
}

func newService(opts ...app.Option) (*app.TarotService, *memory.Store) {
	store := memory.NewStore()
	ids := 0
	opts = append([]app.Option{
		app.WithClock(func() time.Time { return t0 }),
		app.WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		}),
	}, opts...)
	svc := app.NewTarotService(&mockCatalog{cards: testCards()}, store, session.NewStore(), fixedRNG{val: 0}, opts...)
	return svc, store
}

func TestInterpret_Success(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Interpret(context.Background(), app.InterpretRequest{
		Spread:   domain.SpreadThreeCard,
		Question: "그 사람과의 연애는 어떻게 될까요?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(resp.Cards))
	}
	if resp.Result.Category != domain.CategoryLove {
		t.Errorf("unexpected category: %s", resp.Result.Category)
	}
	if !strings.Contains(resp.Result.Text, "[과거]") {
		t.Errorf("text missing position label:\n%s", resp.Result.Text)
	}
	if resp.Narrative != "" {
		t.Errorf("expected no narrative without narrator, got %q", resp.Narrative)
	}
}

func TestInterpret_Errors(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Interpret(ctx, app.InterpretRequest{Spread: "pentagram"})
	if !errors.Is(err, domain.ErrSpreadNotFound) {
		t.Errorf("expected ErrSpreadNotFound, got %v", err)
	}

	_, err = svc.Interpret(ctx, app.InterpretRequest{Spread: domain.SpreadOneCard, Question: strings.Repeat("가", 501)})
	if !errors.Is(err, domain.ErrQuestionTooLong) {
		t.Errorf("expected ErrQuestionTooLong, got %v", err)
	}

	broken := app.NewTarotService(&mockCatalog{err: errors.New("boom")}, memory.NewStore(), session.NewStore(), fixedRNG{})
	if _, err := broken.Interpret(ctx, app.InterpretRequest{Spread: domain.SpreadOneCard}); err == nil {
		t.Error("expected catalog error, got nil")
	}
}

func TestInterpret_Narrator(t *testing.T) {
	n := &mockNarrator{out: ports.NarrateOutput{Text: "이야기", Disclaimer: "참고용", Model: "m1"}}
	svc, _ := newService(app.WithNarrator(n))

	resp, err := svc.Interpret(context.Background(), app.InterpretRequest{Spread: domain.SpreadThreeCard, Question: "이직"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Narrative != "이야기\n\n※ 참고용" {
		t.Errorf("unexpected narrative: %q", resp.Narrative)
	}
	if resp.Model != "m1" {
		t.Errorf("unexpected model: %s", resp.Model)
	}
	if len(n.last.Cards) != 3 || n.last.Cards[0].Position != "과거" {
		t.Errorf("unexpected narrator input: %+v", n.last.Cards)
	}
	if n.last.Category != "직업" {
		t.Errorf("unexpected narrator category: %s", n.last.Category)
	}
}

func TestInterpret_NarratorFailureDegrades(t *testing.T) {
	n := &mockNarrator{err: domain.ErrUpstreamLLM}
	mon := monitor.New(10)
	svc, _ := newService(app.WithNarrator(n), app.WithMonitor(mon))

	resp, err := svc.Interpret(context.Background(), app.InterpretRequest{Spread: domain.SpreadOneCard})
	if err != nil {
		t.Fatalf("narration failure must not fail the reading: %v", err)
	}
	if resp.Narrative != "" || resp.Result.Text == "" {
		t.Errorf("expected templated text only, got narrative %q", resp.Narrative)
	}
	if got := mon.Recent(0); len(got) != 1 || got[0].Source != "narrator" {
		t.Errorf("expected one narrator event, got %+v", got)
	}
}

func TestReadings_CRUD(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	r, err := svc.CreateReading(ctx, app.InterpretRequest{SessionID: "s1", Spread: domain.SpreadFiveCard, Question: "돈"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "id-1" || r.SpreadType != "five-card" || len(r.Cards) != 5 {
		t.Errorf("unexpected reading: %+v", r)
	}
	if r.QuestionType != domain.CategoryMoney {
		t.Errorf("unexpected question type: %s", r.QuestionType)
	}

	got, err := svc.GetReading(ctx, r.ID)
	if err != nil || got.Interpretation != r.Interpretation {
		t.Fatalf("get: %v", err)
	}

	list, err := svc.ListReadings(ctx, "s1", 10)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %d", err, len(list))
	}

	if err := svc.DeleteReading(ctx, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetReading(ctx, r.ID); !errors.Is(err, domain.ErrReadingNotFound) {
		t.Errorf("expected ErrReadingNotFound, got %v", err)
	}
}

func TestCreateReading_StoreFailure(t *testing.T) {
	svc := app.NewTarotService(&mockCatalog{cards: testCards()}, failingStore{}, session.NewStore(), fixedRNG{})
	if _, err := svc.CreateReading(context.Background(), app.InterpretRequest{Spread: domain.SpreadOneCard}); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPick_StoreFailureClearsReadingID(t *testing.T) {
	svc := app.NewTarotService(&mockCatalog{cards: testCards()}, failingStore{}, session.NewStore(), fixedRNG{})
	ctx := context.Background()

	sess, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.SelectSpread(ctx, sess.ID, domain.SpreadOneCard); err != nil {
		t.Fatalf("select spread: %v", err)
	}
	if _, err := svc.AskQuestion(ctx, sess.ID, "오늘 하루는 어떨까요?"); err != nil {
		t.Fatalf("ask: %v", err)
	}

	resp, err := svc.Pick(ctx, sess.ID, 0)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if resp.Reading != nil {
		t.Errorf("expected no reading, got %+v", resp.Reading)
	}
	if resp.Session.ReadingID != "" {
		t.Errorf("expected empty reading id in response, got %q", resp.Session.ReadingID)
	}

	got, err := svc.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Phase != session.PhaseResult {
		t.Errorf("unexpected phase: %s", got.Phase)
	}
	if got.ReadingID != "" {
		t.Errorf("expected empty reading id, got %q", got.ReadingID)
	}
}

func TestSession_Flow(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	sess, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Phase != session.PhaseSpreadSelection {
		t.Fatalf("unexpected phase: %s", sess.Phase)
	}

	if _, err := svc.SelectSpread(ctx, sess.ID, "nope"); !errors.Is(err, domain.ErrSpreadNotFound) {
		t.Errorf("expected ErrSpreadNotFound, got %v", err)
	}
	if _, err := svc.SelectSpread(ctx, sess.ID, domain.SpreadThreeCard); err != nil {
		t.Fatalf("select spread: %v", err)
	}
	sess, err = svc.AskQuestion(ctx, sess.ID, "건강이 걱정돼요")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if sess.Category != domain.CategoryHealth {
		t.Errorf("unexpected category: %s", sess.Category)
	}

	var last app.PickResponse
	for i := range 3 {
		last, err = svc.Pick(ctx, sess.ID, 0)
		if err != nil {
			t.Fatalf("pick %d: %v", i, err)
		}
		if i < 2 && last.Reading != nil {
			t.Fatalf("reading saved before the spread was complete")
		}
	}

	if last.Session.Phase != session.PhaseResult {
		t.Fatalf("expected result phase, got %s", last.Session.Phase)
	}
	if last.Reading == nil || last.Reading.ID != last.Session.ReadingID {
		t.Fatalf("expected saved reading, got %+v", last.Reading)
	}
	if !strings.Contains(last.Session.Interpretation, "건강운") {
		t.Errorf("interpretation missing category label:\n%s", last.Session.Interpretation)
	}

	saved, err := store.Get(ctx, last.Session.ReadingID)
	if err != nil {
		t.Fatalf("reading not stored: %v", err)
	}
	if saved.SessionID != sess.ID || len(saved.Cards) != 3 {
		t.Errorf("unexpected stored reading: %+v", saved)
	}

	if _, err := svc.Pick(ctx, sess.ID, 0); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition after result, got %v", err)
	}

	reset, err := svc.ResetSession(ctx, sess.ID)
	if err != nil || reset.Phase != session.PhaseSpreadSelection {
		t.Errorf("reset: %v %s", err, reset.Phase)
	}
}

func TestSession_ReshuffleAndErrors(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	sess, _ := svc.StartSession(ctx)
	if _, err := svc.Reshuffle(ctx, sess.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}

	_, _ = svc.SelectSpread(ctx, sess.ID, domain.SpreadOneCard)
	if _, err := svc.AskQuestion(ctx, sess.ID, ""); !errors.Is(err, domain.ErrEmptyQuestion) {
		t.Errorf("expected ErrEmptyQuestion, got %v", err)
	}
	_, _ = svc.AskQuestion(ctx, sess.ID, "오늘은?")

	if _, err := svc.Pick(ctx, sess.ID, 99); !errors.Is(err, domain.ErrInvalidPick) {
		t.Errorf("expected ErrInvalidPick, got %v", err)
	}
	re, err := svc.Reshuffle(ctx, sess.ID)
	if err != nil || re.PoolSize() != 22 {
		t.Errorf("reshuffle: %v pool=%d", err, re.PoolSize())
	}
}

func TestPruneSessions(t *testing.T) {
	svc, _ := newService()
	_, _ = svc.StartSession(context.Background())

	if n := svc.PruneSessions(time.Hour); n != 0 {
		t.Errorf("expected no pruning, got %d", n)
	}
	if n := svc.PruneSessions(-time.Minute); n != 1 {
		t.Errorf("expected one pruned session, got %d", n)
	}
}
