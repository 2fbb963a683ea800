package interpret

import (
	"fmt"
	"strings"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

const (
	noCardsText   = "뽑힌 카드가 없어 해석을 완성하지 못했습니다. 카드를 다시 뽑아 주세요."
	freeformName  = "자유 배열"
	sectionMarker = "✦ "
)

// Composer assembles reading text for a spread. Template variety is driven
// by rng so output is reproducible with a fixed source.
type Composer struct {
	contextual ContextTable
	synergies  []Synergy
	rng        domain.RNG
}

// Option customises a Composer.
type Option func(*Composer)

// WithContextTable replaces the contextual sentence table.
func WithContextTable(t ContextTable) Option {
	return func(c *Composer) { c.contextual = t }
}

// WithSynergies replaces the synergy table.
func WithSynergies(s []Synergy) Option {
	return func(c *Composer) { c.synergies = s }
}

// NewComposer returns a Composer using the built-in tables. A nil rng
// always picks the first template.
func NewComposer(rng domain.RNG, opts ...Option) *Composer {
	c := &Composer{
		contextual: defaultContextual,
		synergies:  defaultSynergies,
		rng:        rng,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CardSection is the rendered block for one drawn card.
type CardSection struct {
	Label          string           `json:"label"`
	Card           domain.DrawnCard `json:"card"`
	Keywords       []string         `json:"keywords"`
	Interpretation string           `json:"interpretation"`
}

// Result is a composed reading. Text is the full display string; the other
// fields expose its parts for structured consumers.
type Result struct {
	Text       string          `json:"text"`
	SpreadName string          `json:"spread_name"`
	Category   domain.Category `json:"category"`
	Sections   []CardSection   `json:"sections"`
	Synergies  []Match         `json:"synergies"`
	Conclusion string          `json:"conclusion"`
	Message    string          `json:"message"`
}

// GenerateInterpretation classifies question and composes the reading text.
func (c *Composer) GenerateInterpretation(spread domain.SpreadType, cards []domain.DrawnCard, question string) string {
	return c.Compose(spread, cards, question, Classify(question))
}

// Compose returns the reading text for an already classified question.
func (c *Composer) Compose(spread domain.SpreadType, cards []domain.DrawnCard, question string, category domain.Category) string {
	return c.Build(spread, cards, question, category).Text
}

// Build composes a reading. It never fails: unknown spreads use a generic
// layout, missing positions are skipped and extra cards are numbered.
func (c *Composer) Build(spread domain.SpreadType, cards []domain.DrawnCard, question string, category domain.Category) Result {
	if category == "" {
		category = domain.CategoryGeneral
	}

	def, err := domain.SpreadByID(spread)
	name := def.Name
	if err != nil {
		name = freeformName
	}

	res := Result{SpreadName: name, Category: category}

	var b strings.Builder
	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintf(&b, "질문: %s\n", question)
	}
	fmt.Fprintf(&b, "스프레드: %s · %s운\n", name, CategoryLabel(category))

	if len(cards) == 0 {
		b.WriteString("\n" + noCardsText)
		res.Text = b.String()
		return res
	}

	for i, dc := range cards {
		sec := CardSection{
			Label:          positionLabel(def, i),
			Card:           dc,
			Keywords:       currentKeywords(dc),
			Interpretation: c.contextual.Interpret(dc.Card, category, dc.IsReversed()),
		}
		res.Sections = append(res.Sections, sec)
		writeSection(&b, sec)
	}

	res.Synergies = MatchSynergies(c.synergies, cards)
	if len(res.Synergies) > 0 {
		b.WriteString("\n" + sectionMarker + "카드의 조합\n")
		for _, m := range res.Synergies {
			fmt.Fprintf(&b, "- %s\n", m.Sentence)
		}
	}

	res.Conclusion = c.conclusion(def.ID, cards)
	fmt.Fprintf(&b, "\n%s핵심 결론\n%s\n", sectionMarker, res.Conclusion)

	res.Message = c.personalMessage(category)
	fmt.Fprintf(&b, "\n%s당신을 위한 메시지\n%s", sectionMarker, res.Message)

	res.Text = b.String()
	return res
}

func writeSection(b *strings.Builder, sec CardSection) {
	dc := sec.Card
	fmt.Fprintf(b, "\n[%s] %s", sec.Label, dc.Name)
	if dc.KoreanName != "" && dc.KoreanName != dc.Name {
		fmt.Fprintf(b, " (%s)", dc.KoreanName)
	}
	fmt.Fprintf(b, " · %s\n", dc.Orientation.Label())
	if len(sec.Keywords) > 0 {
		fmt.Fprintf(b, "키워드: %s\n", strings.Join(sec.Keywords, ", "))
	}
	b.WriteString(sec.Interpretation + "\n")
}

// positionLabel names slot i. One-card spreads always label their card as
// the answer.
func positionLabel(def domain.Spread, i int) string {
	if def.ID == domain.SpreadOneCard {
		return "답변"
	}
	if i < len(def.Positions) {
		return def.Positions[i].Label
	}
	return fmt.Sprintf("카드 %d", i+1)
}

func currentKeywords(dc domain.DrawnCard) []string {
	if len(dc.CurrentKeywords) > 0 {
		return dc.CurrentKeywords
	}
	if dc.IsReversed() && len(dc.ReversedKeywords) > 0 {
		return dc.ReversedKeywords
	}
	return dc.UprightKeywords
}

func (c *Composer) pick(n int) int {
	if c.rng == nil || n <= 1 {
		return 0
	}
	return c.rng.Intn(n)
}
