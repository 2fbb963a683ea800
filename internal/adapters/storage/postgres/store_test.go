package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

func sampleReading(session string, at time.Time) domain.Reading {
	fool := domain.Card{ID: 0, Name: "The Fool", KoreanName: "바보", Suit: domain.SuitMajor, HasReversal: true}
	return domain.Reading{
		ID:             uuid.NewString(),
		SessionID:      session,
		Question:       "오늘의 운세는?",
		SpreadType:     string(domain.SpreadOneCard),
		Cards:          []domain.DrawnCard{domain.NewDrawnCard(fool, domain.Reversed)},
		Interpretation: "해석",
		QuestionType:   domain.CategoryGeneral,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

func TestRowConversionKeepsCards(t *testing.T) {
	r := sampleReading("s1", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))

	row, err := toRow(r)
	require.NoError(t, err)
	assert.Equal(t, "general", row.QuestionType)

	back, err := fromRow(row)
	require.NoError(t, err)
	require.Len(t, back.Cards, 1)
	assert.Equal(t, "The Fool", back.Cards[0].Name)
	assert.Equal(t, domain.Reversed, back.Cards[0].Orientation)
}

func TestFromRow_BadCards(t *testing.T) {
	_, err := fromRow(readingRow{ID: "x", Cards: []byte("{not json")})
	assert.Error(t, err)
}

// TestStore_Postgres runs against a real database when TAROT_TEST_DSN is set.
func TestStore_Postgres(t *testing.T) {
	dsn := os.Getenv("TAROT_TEST_DSN")
	if dsn == "" {
		t.Skip("TAROT_TEST_DSN not set")
	}

	store, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	session := uuid.NewString()
	base := time.Now().UTC().Truncate(time.Millisecond)
	older := sampleReading(session, base)
	newer := sampleReading(session, base.Add(time.Minute))

	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	got, err := store.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.Question, got.Question)

	list, err := store.List(ctx, session, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	require.NoError(t, store.Delete(ctx, older.ID))
	assert.ErrorIs(t, store.Delete(ctx, older.ID), domain.ErrReadingNotFound)
	_, err = store.Get(ctx, older.ID)
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)

	require.NoError(t, store.Delete(ctx, newer.ID))
}
