package http

import (
	"github.com/randomtoy/tarot-reader/internal/app"
	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
	"github.com/randomtoy/tarot-reader/internal/monitor"
	"github.com/randomtoy/tarot-reader/internal/session"
)

// InterpretationRequest is the body of POST /v1/interpretations and
// POST /v1/readings.
type InterpretationRequest struct {
	SessionID string `json:"session_id"`
	Spread    string `json:"spread"`
	Question  string `json:"question"`
}

// InterpretationResponse is the JSON shape returned by POST /v1/interpretations.
type InterpretationResponse struct {
	Spread        string         `json:"spread"`
	SpreadName    string         `json:"spread_name"`
	Category      string         `json:"category"`
	CategoryLabel string         `json:"category_label"`
	Cards         []CardResponse `json:"cards"`
	Text          string         `json:"text"`
	Synergies     []string       `json:"synergies"`
	Conclusion    string         `json:"conclusion"`
	Message       string         `json:"message"`
	Narrative     string         `json:"narrative,omitempty"`
	Meta          MetaResp       `json:"meta"`
}

type CardResponse struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	KoreanName     string             `json:"korean_name"`
	Position       int                `json:"position"`
	PositionLabel  string             `json:"position_label"`
	Orientation    domain.Orientation `json:"orientation"`
	Keywords       []string           `json:"keywords"`
	Meaning        string             `json:"meaning"`
	Interpretation string             `json:"interpretation"`
	ImageRef       string             `json:"image_ref"`
}

type MetaResp struct {
	Model     string `json:"model,omitempty"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ReadingListResponse struct {
	Readings []domain.Reading `json:"readings"`
}

type CardListResponse struct {
	Cards []domain.Card `json:"cards"`
}

type SpreadListResponse struct {
	Spreads []domain.Spread `json:"spreads"`
}

type ClassifyResponse struct {
	Question string          `json:"question"`
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
}

// SessionResponse adds pool counters to the session snapshot.
type SessionResponse struct {
	session.Session
	PoolSize  int `json:"pool_size"`
	Remaining int `json:"remaining"`
}

type SpreadRequest struct {
	Spread string `json:"spread"`
}

type QuestionRequest struct {
	Question string `json:"question"`
}

type PickRequest struct {
	Index *int `json:"index"`
}

type PickResponse struct {
	Session SessionResponse  `json:"session"`
	Card    domain.DrawnCard `json:"card"`
	Reading *domain.Reading  `json:"reading,omitempty"`
}

type ErrorsResponse struct {
	Total  uint64          `json:"total"`
	Events []monitor.Event `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toInterpretationResponse(r app.InterpretResponse, requestID string) InterpretationResponse {
	cards := make([]CardResponse, len(r.Result.Sections))
	for i, sec := range r.Result.Sections {
		dc := sec.Card
		cards[i] = CardResponse{
			ID:             dc.ID,
			Name:           dc.Name,
			KoreanName:     dc.KoreanName,
			Position:       dc.Position,
			PositionLabel:  sec.Label,
			Orientation:    dc.Orientation,
			Keywords:       sec.Keywords,
			Meaning:        dc.CurrentMeaning,
			Interpretation: sec.Interpretation,
			ImageRef:       dc.ImageRef,
		}
	}

	synergies := make([]string, len(r.Result.Synergies))
	for i, m := range r.Result.Synergies {
		synergies[i] = m.Sentence
	}

	return InterpretationResponse{
		Spread:        string(r.Spread.ID),
		SpreadName:    r.Result.SpreadName,
		Category:      string(r.Result.Category),
		CategoryLabel: interpret.CategoryLabel(r.Result.Category),
		Cards:         cards,
		Text:          r.Result.Text,
		Synergies:     synergies,
		Conclusion:    r.Result.Conclusion,
		Message:       r.Result.Message,
		Narrative:     r.Narrative,
		Meta: MetaResp{
			Model:     r.Model,
			RequestID: requestID,
			LatencyMS: r.LatencyMS,
		},
	}
}

func toSessionResponse(s session.Session) SessionResponse {
	return SessionResponse{Session: s, PoolSize: s.PoolSize(), Remaining: s.Remaining()}
}
