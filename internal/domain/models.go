package domain

import "time"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Orientation represents the orientation of a drawn tarot card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Label returns the Korean display label for the orientation.
func (o Orientation) Label() string {
	if o == Reversed {
		return "역방향"
	}
	return "정방향"
}

// Suit identifies the arcana family of a card.
type Suit string

const (
	SuitMajor     Suit = "major"
	SuitCups      Suit = "cups"
	SuitPentacles Suit = "pentacles"
	SuitSwords    Suit = "swords"
	SuitWands     Suit = "wands"
)

// Category is the topic a question was classified into.
type Category string

const (
	CategoryLove    Category = "love"
	CategoryCareer  Category = "career"
	CategoryMoney   Category = "money"
	CategoryHealth  Category = "health"
	CategoryGeneral Category = "general"
)

// Card is an immutable catalog entry. Reversed fields are only set when
// HasReversal is true.
type Card struct {
	ID                     int      `json:"id"`
	Name                   string   `json:"name"`
	KoreanName             string   `json:"korean_name"`
	Suit                   Suit     `json:"suit"`
	HasReversal            bool     `json:"has_reversal"`
	UprightMeaning         string   `json:"upright_meaning"`
	UprightInterpretation  string   `json:"upright_interpretation"`
	UprightKeywords        []string `json:"upright_keywords"`
	ReversedMeaning        string   `json:"reversed_meaning,omitempty"`
	ReversedInterpretation string   `json:"reversed_interpretation,omitempty"`
	ReversedKeywords       []string `json:"reversed_keywords,omitempty"`
	ImageRef               string   `json:"image_ref"`
}

// DrawnCard is a card drawn as part of a reading, with the orientation
// resolved and the matching text copied into the Current* fields.
type DrawnCard struct {
	Card
	Position              int         `json:"position"`
	Orientation           Orientation `json:"orientation"`
	CurrentMeaning        string      `json:"current_meaning"`
	CurrentInterpretation string      `json:"current_interpretation"`
	CurrentKeywords       []string    `json:"current_keywords"`
}

// NewDrawnCard builds a DrawnCard for c. Cards without a reversed side are
// always upright regardless of o.
func NewDrawnCard(c Card, o Orientation) DrawnCard {
	if !c.HasReversal {
		o = Upright
	}
	dc := DrawnCard{Card: c, Orientation: o}
	if o == Reversed {
		dc.CurrentMeaning = c.ReversedMeaning
		dc.CurrentInterpretation = c.ReversedInterpretation
		dc.CurrentKeywords = c.ReversedKeywords
	} else {
		dc.CurrentMeaning = c.UprightMeaning
		dc.CurrentInterpretation = c.UprightInterpretation
		dc.CurrentKeywords = c.UprightKeywords
	}
	return dc
}

// IsReversed reports whether the card was drawn reversed.
func (d DrawnCard) IsReversed() bool { return d.Orientation == Reversed }

// DisplayName returns the Korean name when present, the English name otherwise.
func (c Card) DisplayName() string {
	if c.KoreanName != "" {
		return c.KoreanName
	}
	return c.Name
}

// Reading is a persisted reading record.
type Reading struct {
	ID             string      `json:"id"`
	SessionID      string      `json:"session_id"`
	Question       string      `json:"question"`
	SpreadType     string      `json:"spread_type"`
	Cards          []DrawnCard `json:"cards"`
	Interpretation string      `json:"interpretation"`
	QuestionType   Category    `json:"question_type"`
	Narrative      string      `json:"narrative,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
