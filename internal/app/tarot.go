package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
	"github.com/randomtoy/tarot-reader/internal/monitor"
	"github.com/randomtoy/tarot-reader/internal/ports"
	"github.com/randomtoy/tarot-reader/internal/session"
)

const maxQuestionRunes = 500

// InterpretRequest is the application-level input (no HTTP types).
type InterpretRequest struct {
	SessionID string
	Spread    domain.SpreadType
	Question  string
}

// InterpretResponse is the application-level output.
type InterpretResponse struct {
	Spread    domain.Spread
	Cards     []domain.DrawnCard
	Result    interpret.Result
	Narrative string
	Model     string
	LatencyMS int64
}

// PickResponse is the outcome of turning over one card in a session.
type PickResponse struct {
	Session session.Session
	Card    domain.DrawnCard
	// Reading is set once the last card completes the spread.
	Reading *domain.Reading
}

// TarotService orchestrates drawing, interpretation, sessions and reading
// history.
type TarotService struct {
	catalog  ports.CardCatalog
	readings ports.ReadingStore
	sessions *session.Store
	composer *interpret.Composer
	rng      domain.RNG

	narrator ports.Narrator
	monitor  *monitor.Monitor
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// Option customises a TarotService.
type Option func(*TarotService)

// WithNarrator enables LLM narratives. Without it readings carry only the
// templated text.
func WithNarrator(n ports.Narrator) Option {
	return func(s *TarotService) { s.narrator = n }
}

// WithMonitor records degraded narrations in m.
func WithMonitor(m *monitor.Monitor) Option {
	return func(s *TarotService) { s.monitor = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *TarotService) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *TarotService) { s.now = now }
}

func WithIDGenerator(f func() string) Option {
	return func(s *TarotService) { s.newID = f }
}

func NewTarotService(catalog ports.CardCatalog, readings ports.ReadingStore, sessions *session.Store, rng domain.RNG, opts ...Option) *TarotService {
	s := &TarotService{
		catalog:  catalog,
		readings: readings,
		sessions: sessions,
		composer: interpret.NewComposer(rng),
		rng:      rng,
		logger:   slog.Default(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Spreads lists the built-in layouts.
func (s *TarotService) Spreads() []domain.Spread {
	return domain.Spreads()
}

func (s *TarotService) Cards(ctx context.Context) ([]domain.Card, error) {
	return s.catalog.Cards(ctx)
}

func (s *TarotService) Card(ctx context.Context, id int) (domain.Card, error) {
	return s.catalog.CardByID(ctx, id)
}

func (s *TarotService) Classify(question string) domain.Category {
	return interpret.Classify(question)
}

// Interpret draws a spread and composes its reading without storing it.
func (s *TarotService) Interpret(ctx context.Context, req InterpretRequest) (InterpretResponse, error) {
	if len([]rune(req.Question)) > maxQuestionRunes {
		return InterpretResponse{}, domain.ErrQuestionTooLong
	}

	spread, err := domain.SpreadByID(req.Spread)
	if err != nil {
		return InterpretResponse{}, err
	}

	deck, err := s.catalog.Cards(ctx)
	if err != nil {
		return InterpretResponse{}, fmt.Errorf("load cards: %w", err)
	}

	drawn, err := domain.DrawCards(deck, spread.CardCount, s.rng)
	if err != nil {
		return InterpretResponse{}, fmt.Errorf("draw cards: %w", err)
	}

	category := interpret.Classify(req.Question)
	res := s.composer.Build(spread.ID, drawn, req.Question, category)

	start := time.Now()
	narrative, model := s.narrate(ctx, spread, req.Question, res)

	return InterpretResponse{
		Spread:    spread,
		Cards:     drawn,
		Result:    res,
		Narrative: narrative,
		Model:     model,
		LatencyMS: time.Since(start).Milliseconds(),
	}, nil
}

// CreateReading interprets a fresh draw and saves it to history.
func (s *TarotService) CreateReading(ctx context.Context, req InterpretRequest) (domain.Reading, error) {
	resp, err := s.Interpret(ctx, req)
	if err != nil {
		return domain.Reading{}, err
	}

	now := s.now()
	r := domain.Reading{
		ID:             s.newID(),
		SessionID:      req.SessionID,
		Question:       req.Question,
		SpreadType:     string(resp.Spread.ID),
		Cards:          resp.Cards,
		Interpretation: resp.Result.Text,
		QuestionType:   resp.Result.Category,
		Narrative:      resp.Narrative,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.readings.Create(ctx, r); err != nil {
		return domain.Reading{}, fmt.Errorf("save reading: %w", err)
	}
	return r, nil
}

func (s *TarotService) GetReading(ctx context.Context, id string) (domain.Reading, error) {
	return s.readings.Get(ctx, id)
}

func (s *TarotService) ListReadings(ctx context.Context, sessionID string, limit int) ([]domain.Reading, error) {
	return s.readings.List(ctx, sessionID, limit)
}

func (s *TarotService) DeleteReading(ctx context.Context, id string) error {
	return s.readings.Delete(ctx, id)
}

// narrate asks the narrator for a retelling. Failures are logged and leave
// the reading with its templated text only.
func (s *TarotService) narrate(ctx context.Context, spread domain.Spread, question string, res interpret.Result) (string, string) {
	if s.narrator == nil || len(res.Sections) == 0 {
		return "", ""
	}

	in := ports.NarrateInput{
		Spread:         spread.Name,
		Question:       question,
		Category:       interpret.CategoryLabel(res.Category),
		Interpretation: res.Text,
		Cards:          make([]ports.CardInput, len(res.Sections)),
	}
	for i, sec := range res.Sections {
		in.Cards[i] = ports.CardInput{
			Name:        sec.Card.DisplayName(),
			Position:    sec.Label,
			Orientation: sec.Card.Orientation.Label(),
			Keywords:    sec.Keywords,
		}
	}

	out, err := s.narrator.Narrate(ctx, in)
	if err != nil {
		s.logger.WarnContext(ctx, "narration failed, using templated text", "spread", spread.ID, "error", err)
		if s.monitor != nil {
			s.monitor.RecordError("narrator", "", err)
		}
		return "", ""
	}

	text := out.Text
	if out.Disclaimer != "" {
		text += "\n\n※ " + out.Disclaimer
	}
	return text, out.Model
}
