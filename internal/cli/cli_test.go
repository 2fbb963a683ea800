package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/tarot-reader/internal/adapters/decks"
	"github.com/randomtoy/tarot-reader/internal/config"
	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
)

type shortCatalog struct{ *decks.EmbeddedStore }

func (s shortCatalog) Cards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.EmbeddedStore.Cards(ctx)
	return cards[:10], err
}

func testDeps() Deps {
	return Deps{
		Catalog:    decks.NewEmbeddedStore(),
		NewRNG:     newRNG,
		LoadConfig: func() (config.CLIConfig, error) { return config.CLIConfig{DefaultSpread: "three-card"}, nil },
		Width:      60,
	}
}

func run(t *testing.T, d Deps, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(d)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDraw_DefaultSpreadFromConfig(t *testing.T) {
	out, err := run(t, testDeps(), "draw", "-q", "이직해도 괜찮을까요?", "--seed", "7", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "질문: 이직해도 괜찮을까요?")
	assert.Contains(t, out, "스프레드: 쓰리 카드 · 직업운")
	for _, label := range []string{"[과거]", "[현재]", "[미래]", "✦ 핵심 결론", "✦ 당신을 위한 메시지"} {
		assert.Contains(t, out, label)
	}
}

func TestDraw_SeedIsReproducible(t *testing.T) {
	first, err := run(t, testDeps(), "draw", "-s", "celtic-cross", "--seed", "42", "--no-color")
	require.NoError(t, err)
	second, err := run(t, testDeps(), "draw", "-s", "celtic-cross", "--seed", "42", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDraw_JSON(t *testing.T) {
	out, err := run(t, testDeps(), "draw", "-s", "five-card", "--seed", "3", "--json")
	require.NoError(t, err)

	var res interpret.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Sections, 5)
	assert.Equal(t, domain.CategoryGeneral, res.Category)
}

func TestDraw_Errors(t *testing.T) {
	_, err := run(t, testDeps(), "draw", "-s", "pentagram")
	assert.ErrorIs(t, err, domain.ErrSpreadNotFound)

	_, err = run(t, testDeps(), "draw", "-q", strings.Repeat("가", 501))
	assert.ErrorIs(t, err, domain.ErrQuestionTooLong)

	d := testDeps()
	d.LoadConfig = func() (config.CLIConfig, error) { return config.CLIConfig{}, errors.New("bad toml") }
	_, err = run(t, d, "draw")
	assert.Error(t, err)
}

func TestSpreads(t *testing.T) {
	out, err := run(t, testDeps(), "spreads")
	require.NoError(t, err)
	for _, id := range []string{"one-card", "three-card", "five-card", "celtic-cross"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "과거 → 현재 → 미래")
}

func TestCard(t *testing.T) {
	out, err := run(t, testDeps(), "card", "0", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "The Fool (바보)")
	assert.Contains(t, out, "역방향")

	out, err = run(t, testDeps(), "card", "Two", "of", "Cups", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "컵 2")
	assert.NotContains(t, out, "역방향")

	_, err = run(t, testDeps(), "card", "The", "Joker")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestClassify(t *testing.T) {
	out, err := run(t, testDeps(), "classify", "요즘", "스트레스가", "심해요")
	require.NoError(t, err)
	assert.Equal(t, "health (건강)\n", out)
}

func TestValidate(t *testing.T) {
	out, err := run(t, testDeps(), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Catalog of 78 cards is valid.")

	d := testDeps()
	d.Catalog = shortCatalog{decks.NewEmbeddedStore()}
	out, err = run(t, d, "validate")
	assert.Error(t, err)
	assert.Contains(t, out, "❌")
}

func TestWrapText(t *testing.T) {
	lines := wrapText("가나다 라마바 사아자 차카타", 14)
	assert.Equal(t, []string{"가나다 라마바", "사아자 차카타"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, displayWidth(l), 14)
	}

	assert.Equal(t, []string{""}, wrapText("   ", 20))
	assert.Equal(t, 5, displayWidth("Tower"))
	assert.Equal(t, 4, displayWidth("바보"))
}
