package decks

import (
	"fmt"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

const (
	catalogSize    = 78
	reversibleSize = 22
)

// ValidationResults collects catalog problems. Errors break an invariant,
// warnings flag incomplete content.
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found.
func (r ValidationResults) OK() bool { return len(r.Errors) == 0 }

// Validate checks the catalog invariants: 78 cards, 22 reversible, unique
// IDs and names, and reversed text present exactly when a card is reversible.
func Validate(cards []domain.Card) ValidationResults {
	var res ValidationResults

	if len(cards) != catalogSize {
		res.Errors = append(res.Errors, fmt.Sprintf("catalog has %d cards, want %d", len(cards), catalogSize))
	}

	ids := make(map[int]bool, len(cards))
	names := make(map[string]bool, len(cards))
	reversible := 0
	for _, c := range cards {
		if ids[c.ID] {
			res.Errors = append(res.Errors, fmt.Sprintf("duplicate card id %d", c.ID))
		}
		ids[c.ID] = true

		if c.Name == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("card %d has no name", c.ID))
		} else if names[c.Name] {
			res.Errors = append(res.Errors, fmt.Sprintf("duplicate card name %q", c.Name))
		}
		names[c.Name] = true

		switch c.Suit {
		case domain.SuitMajor, domain.SuitCups, domain.SuitPentacles, domain.SuitSwords, domain.SuitWands:
		default:
			res.Errors = append(res.Errors, fmt.Sprintf("card %q has unknown suit %q", c.Name, c.Suit))
		}

		if c.HasReversal {
			reversible++
			if c.Suit != domain.SuitMajor {
				res.Errors = append(res.Errors, fmt.Sprintf("minor card %q must not be reversible", c.Name))
			}
			if c.ReversedInterpretation == "" || len(c.ReversedKeywords) == 0 {
				res.Errors = append(res.Errors, fmt.Sprintf("reversible card %q is missing reversed text", c.Name))
			}
		}

		if c.UprightInterpretation == "" || len(c.UprightKeywords) == 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("card %q is missing upright text", c.Name))
		}
		if c.KoreanName == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("card %q has no Korean name", c.Name))
		}
		if c.ImageRef == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("card %q has no image reference", c.Name))
		}
	}

	if reversible != reversibleSize {
		res.Errors = append(res.Errors, fmt.Sprintf("catalog has %d reversible cards, want %d", reversible, reversibleSize))
	}

	return res
}
