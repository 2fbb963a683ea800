package interpret_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/tarot-reader/internal/adapters/decks"
	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
)

func drawn(name, korean string, o domain.Orientation) domain.DrawnCard {
	return domain.DrawnCard{
		Card:        domain.Card{Name: name, KoreanName: korean, HasReversal: true},
		Orientation: o,
	}
}

func TestFindSynergies_DeathAndFool(t *testing.T) {
	orders := [][]domain.DrawnCard{
		{drawn("Death", "죽음", domain.Upright), drawn("The Fool", "바보", domain.Upright)},
		{drawn("The Fool", "바보", domain.Reversed), drawn("Death", "죽음", domain.Reversed)},
	}
	for _, cards := range orders {
		got := interpret.FindSynergies(cards)
		require.Len(t, got, 1)
		assert.Contains(t, got[0], "완전히 새로운 시작")
		assert.Contains(t, got[0], "바보와 죽음이 함께 나타났습니다.")
	}
}

func TestFindSynergies_NoMatch(t *testing.T) {
	cards := []domain.DrawnCard{
		drawn("The Fool", "바보", domain.Upright),
		drawn("Two of Wands", "완드 2", domain.Upright),
	}
	assert.Empty(t, interpret.FindSynergies(cards))
	assert.Empty(t, interpret.FindSynergies(nil))
}

func TestFindSynergies_TripleNeedsAllCards(t *testing.T) {
	sunStar := []domain.DrawnCard{
		drawn("The Sun", "태양", domain.Upright),
		drawn("The Star", "별", domain.Upright),
	}
	for _, s := range interpret.FindSynergies(sunStar) {
		assert.NotContains(t, s, "해와 별과 달")
	}

	all := append(sunStar, drawn("The Moon", "달", domain.Upright))
	got := interpret.FindSynergies(all)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "태양, 별과 달이 함께 나타났습니다.")
}

func TestMatchSynergies_TableOrder(t *testing.T) {
	table := []interpret.Synergy{
		{Cards: []string{"B", "C"}, Text: "second", Strength: interpret.StrengthSubtle},
		{Cards: []string{"A", "B"}, Text: "first", Strength: interpret.StrengthStrong},
		{Cards: []string{"A", "Z"}, Text: "missing", Strength: interpret.StrengthModerate},
	}
	cards := []domain.DrawnCard{drawn("A", "", domain.Upright), drawn("B", "", domain.Upright), drawn("C", "", domain.Upright)}

	got := interpret.MatchSynergies(table, cards)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Text)
	assert.Equal(t, "first", got[1].Text)
	assert.Equal(t, interpret.StrengthStrong, got[1].Strength)
}

func TestDefaultSynergies_WellFormed(t *testing.T) {
	for _, s := range interpret.DefaultSynergies() {
		assert.GreaterOrEqual(t, len(s.Cards), 2)
		assert.LessOrEqual(t, len(s.Cards), 3)
		assert.NotEmpty(t, s.Text)
		assert.Contains(t, []interpret.Strength{interpret.StrengthStrong, interpret.StrengthModerate, interpret.StrengthSubtle}, s.Strength)
	}
}

func catalogCards(t *testing.T, names ...string) []domain.DrawnCard {
	t.Helper()
	store := decks.NewEmbeddedStore()
	out := make([]domain.DrawnCard, 0, len(names))
	for _, n := range names {
		c, err := store.CardByName(context.Background(), n)
		require.NoError(t, err, n)
		out = append(out, domain.NewDrawnCard(c, domain.Upright))
	}
	return out
}

func TestFindSynergies_NumberedMinorCards(t *testing.T) {
	cards := catalogCards(t, "The Lovers", "Two of Cups", "Ten of Pentacles", "The Empress", "Ten of Swords", "The Star")

	got := interpret.FindSynergies(cards)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "연인과 컵 2가 함께 나타났습니다.")
	assert.Contains(t, got[1], "펜타클 10과 여황제가 함께 나타났습니다.")
	assert.Contains(t, got[2], "소드 10과 별이 함께 나타났습니다.")
}

func TestDefaultSynergies_CatalogNamesTakeParticles(t *testing.T) {
	for _, s := range interpret.DefaultSynergies() {
		cards := catalogCards(t, s.Cards...)
		got := interpret.MatchSynergies([]interpret.Synergy{s}, cards)
		require.Len(t, got, 1, s.Cards)
		assert.Contains(t, got[0].Sentence, " 함께 나타났습니다. ", s.Cards)
	}
}

func TestMatchSynergies_UnreadableNames(t *testing.T) {
	table := []interpret.Synergy{{Cards: []string{"A", "B"}, Text: "pair", Strength: interpret.StrengthSubtle}}
	cards := []domain.DrawnCard{drawn("A", "", domain.Upright), drawn("B", "Bee", domain.Upright)}

	got := interpret.MatchSynergies(table, cards)
	require.Len(t, got, 1)
	assert.Equal(t, "A, Bee의 조합이 나타났습니다. pair", got[0].Sentence)
}
