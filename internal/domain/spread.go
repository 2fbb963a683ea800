package domain

// SpreadType identifies a spread layout.
type SpreadType string

const (
	SpreadOneCard     SpreadType = "one-card"
	SpreadThreeCard   SpreadType = "three-card"
	SpreadFiveCard    SpreadType = "five-card"
	SpreadCelticCross SpreadType = "celtic-cross"
)

// Complexity groups spreads by how elaborate they are.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityDetailed Complexity = "detailed"
)

// Position is one slot of a spread.
type Position struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Spread describes a layout. len(Positions) == CardCount.
type Spread struct {
	ID          SpreadType `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CardCount   int        `json:"card_count"`
	Positions   []Position `json:"positions"`
	Complexity  Complexity `json:"complexity"`
	Tags        []string   `json:"tags"`
}

var spreads = []Spread{
	{
		ID:          SpreadOneCard,
		Name:        "원 카드",
		Description: "한 장의 카드로 오늘의 흐름이나 간단한 질문에 답합니다.",
		CardCount:   1,
		Positions:   []Position{{Key: "answer", Label: "답변"}},
		Complexity:  ComplexitySimple,
		Tags:        []string{"오늘의 운세", "빠른 답변", "예/아니오"},
	},
	{
		ID:          SpreadThreeCard,
		Name:        "쓰리 카드",
		Description: "과거, 현재, 미래의 흐름을 세 장의 카드로 살펴봅니다.",
		CardCount:   3,
		Positions: []Position{
			{Key: "past", Label: "과거"},
			{Key: "present", Label: "현재"},
			{Key: "future", Label: "미래"},
		},
		Complexity: ComplexityModerate,
		Tags:       []string{"흐름", "연애", "일반"},
	},
	{
		ID:          SpreadFiveCard,
		Name:        "파이브 카드",
		Description: "상황과 장애물, 조언과 결과까지 입체적으로 살펴봅니다.",
		CardCount:   5,
		Positions: []Position{
			{Key: "situation", Label: "현재 상황"},
			{Key: "obstacle", Label: "장애물"},
			{Key: "influence", Label: "과거의 영향"},
			{Key: "advice", Label: "조언"},
			{Key: "outcome", Label: "결과"},
		},
		Complexity: ComplexityModerate,
		Tags:       []string{"고민 해결", "직장", "결정"},
	},
	{
		ID:          SpreadCelticCross,
		Name:        "켈틱 크로스",
		Description: "열 장의 카드로 상황 전체를 깊이 있게 읽어냅니다.",
		CardCount:   10,
		Positions: []Position{
			{Key: "present", Label: "현재 상황"},
			{Key: "challenge", Label: "도전 과제"},
			{Key: "foundation", Label: "근본 원인"},
			{Key: "past", Label: "가까운 과거"},
			{Key: "crown", Label: "가능한 목표"},
			{Key: "future", Label: "가까운 미래"},
			{Key: "self", Label: "자신의 태도"},
			{Key: "environment", Label: "주변 환경"},
			{Key: "hopes", Label: "희망과 두려움"},
			{Key: "outcome", Label: "최종 결과"},
		},
		Complexity: ComplexityDetailed,
		Tags:       []string{"심층 분석", "인생 전반", "중요한 결정"},
	},
}

// Spreads returns the built-in spread definitions in display order.
func Spreads() []Spread {
	out := make([]Spread, len(spreads))
	copy(out, spreads)
	return out
}

// SpreadByID looks up a built-in spread.
func SpreadByID(id SpreadType) (Spread, error) {
	for _, s := range spreads {
		if s.ID == id {
			return s, nil
		}
	}
	return Spread{}, ErrSpreadNotFound
}
