package interpret

import (
	"strings"

	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/josa"
)

// Strength ranks how strongly a combination colours a reading.
type Strength string

const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthSubtle   Strength = "subtle"
)

// Synergy is a named combination of two or three cards. It matches when
// every name in Cards is among the drawn cards, in any orientation.
type Synergy struct {
	Cards    []string `json:"cards"`
	Text     string   `json:"text"`
	Strength Strength `json:"strength"`
}

// Match is a synergy found in a reading with its rendered sentence.
type Match struct {
	Synergy
	Sentence string `json:"sentence"`
}

var defaultSynergies = []Synergy{
	{Cards: []string{"The Fool", "Death"}, Strength: StrengthStrong,
		Text: "낡은 것이 완전히 끝나고 완전히 새로운 시작이 펼쳐집니다. 과거에 얽매이지 말고 새 출발을 맞이하세요."},
	{Cards: []string{"The Tower", "The Star"}, Strength: StrengthStrong,
		Text: "큰 흔들림 뒤에 치유와 희망이 찾아옵니다. 무너진 자리에서 더 나은 미래가 자랍니다."},
	{Cards: []string{"The Sun", "The World"}, Strength: StrengthStrong,
		Text: "빛나는 성공과 완성이 겹쳐 있습니다. 지금 추진하는 일이 큰 성취로 이어질 가능성이 높습니다."},
	{Cards: []string{"The Lovers", "Two of Cups"}, Strength: StrengthStrong,
		Text: "서로의 마음이 깊이 통하는 인연입니다. 진실한 사랑과 결합의 기운이 강합니다."},
	{Cards: []string{"The Magician", "Ace of Wands"}, Strength: StrengthModerate,
		Text: "번뜩이는 아이디어를 바로 실행으로 옮길 힘이 있습니다. 지금 시작하세요."},
	{Cards: []string{"The Empress", "The Emperor"}, Strength: StrengthModerate,
		Text: "따뜻함과 단단함이 균형을 이룹니다. 감성과 원칙을 함께 활용하면 안정된 결실을 맺습니다."},
	{Cards: []string{"The High Priestess", "The Moon"}, Strength: StrengthModerate,
		Text: "직관이 매우 예민해지는 때입니다. 눈에 보이지 않는 신호를 놓치지 마세요."},
	{Cards: []string{"Wheel of Fortune", "The Chariot"}, Strength: StrengthModerate,
		Text: "찾아온 기회를 강한 추진력으로 붙잡을 수 있습니다. 흐름이 당신 편입니다."},
	{Cards: []string{"The Devil", "The Tower"}, Strength: StrengthStrong,
		Text: "오래된 속박이 갑작스럽게 끊어집니다. 충격적이지만 결국 자유로 이어지는 변화입니다."},
	{Cards: []string{"The Hermit", "The High Priestess"}, Strength: StrengthSubtle,
		Text: "깊은 성찰과 직관이 만나 내면의 지혜가 깨어납니다. 혼자만의 시간이 답을 줍니다."},
	{Cards: []string{"Justice", "Judgement"}, Strength: StrengthModerate,
		Text: "지난 선택의 결과가 공정하게 돌아옵니다. 정직하게 마무리하면 새로운 장이 열립니다."},
	{Cards: []string{"Ten of Pentacles", "The Empress"}, Strength: StrengthSubtle,
		Text: "가정과 재정 모두에 풍요가 깃듭니다. 오래 지속될 안정의 기운입니다."},
	{Cards: []string{"Ten of Swords", "The Star"}, Strength: StrengthSubtle,
		Text: "가장 힘든 순간이 지나고 회복의 빛이 비칩니다. 이제 올라갈 일만 남았습니다."},
	{Cards: []string{"The Sun", "The Star", "The Moon"}, Strength: StrengthStrong,
		Text: "해와 별과 달이 모두 모였습니다. 의식과 희망과 무의식이 하나로 이어지는 특별한 흐름입니다."},
	{Cards: []string{"Death", "The Tower", "Judgement"}, Strength: StrengthStrong,
		Text: "근본적인 변화가 연달아 일어납니다. 삶의 큰 전환기를 지나 새롭게 태어나게 됩니다."},
}

// DefaultSynergies returns a copy of the built-in synergy table.
func DefaultSynergies() []Synergy {
	out := make([]Synergy, len(defaultSynergies))
	copy(out, defaultSynergies)
	return out
}

// FindSynergies returns the sentences of every built-in synergy fully
// present among cards, in table order.
func FindSynergies(cards []domain.DrawnCard) []string {
	return sentences(MatchSynergies(defaultSynergies, cards))
}

// MatchSynergies matches table against cards by name only.
func MatchSynergies(table []Synergy, cards []domain.DrawnCard) []Match {
	drawn := make(map[string]domain.DrawnCard, len(cards))
	for _, c := range cards {
		drawn[c.Name] = c
	}

	var out []Match
	for _, s := range table {
		names := make([]string, 0, len(s.Cards))
		for _, name := range s.Cards {
			c, ok := drawn[name]
			if !ok {
				names = nil
				break
			}
			names = append(names, c.DisplayName())
		}
		if len(names) == 0 {
			continue
		}
		out = append(out, Match{Synergy: s, Sentence: pairing(names) + " " + s.Text})
	}
	return out
}

// pairing opens a synergy sentence. Names without a Korean reading cannot
// take a particle, so they get a particle-free frame.
func pairing(names []string) string {
	for _, n := range names {
		if _, ok := josa.HasCoda(n); !ok {
			return strings.Join(names, ", ") + "의 조합이 나타났습니다."
		}
	}
	return josa.Attach(josa.Join(names), josa.Subject) + " 함께 나타났습니다."
}

func sentences(matches []Match) []string {
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Sentence
	}
	return out
}
