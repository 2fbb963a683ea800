package interpret

import (
	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/josa"
)

type singleTemplate func(kw string) string

var singleTemplates = []singleTemplate{
	func(kw string) string {
		return "지금 당신에게 가장 필요한 열쇠는 " + kw + "입니다."
	},
	func(kw string) string {
		return josa.Attach(kw, josa.Topic) + " 이번 질문에 대한 가장 분명한 답입니다."
	},
	func(kw string) string {
		return josa.Attach(kw, josa.Genitive) + " 기운을 믿고 한 걸음 내딛어 보세요."
	},
}

var timelineTemplates = []func(past, present, future string) string{
	func(past, present, future string) string {
		return past + "에서 출발한 흐름이 " + josa.Attach(present, josa.Object) + " 거쳐 " +
			josa.Attach(future, josa.Instrumental) + " 이어집니다."
	},
	func(past, present, future string) string {
		return "과거의 " + past + ", 현재의 " + present + ", 그리고 미래의 " + future +
			". 이 흐름이 당신의 이야기를 완성합니다."
	},
	func(past, present, future string) string {
		return josa.Attach(past, josa.Topic) + " 지나갔고 지금은 " + present + "의 시간입니다. 머지않아 " +
			josa.Attach(future, josa.Subject) + " 찾아옵니다."
	},
}

var adviceTemplates = []func(situation, advice, outcome string) string{
	func(situation, advice, outcome string) string {
		return josa.Attach(situation, josa.Genitive) + " 상황에서 " + josa.Attach(advice, josa.Object) +
			" 마음에 새기면 " + josa.Attach(outcome, josa.Instrumental) + " 나아갈 수 있습니다."
	},
	func(situation, advice, outcome string) string {
		return "지금은 " + josa.Attach(situation, josa.Genitive) + " 시기입니다. " +
			josa.Attach(advice, josa.Subject) + " 열쇠가 되어 결국 " + outcome + "에 닿게 됩니다."
	},
}

var arcTemplates = []func(first, last string) string{
	func(first, last string) string {
		return first + "에서 시작된 이야기는 결국 " + josa.Attach(last, josa.Instrumental) + " 마무리됩니다."
	},
	func(first, last string) string {
		return "현재의 " + josa.Attach(first, josa.Topic) + " 최종적으로 " + josa.Attach(last, josa.Genitive) +
			" 결과를 향하고 있습니다."
	},
}

// conclusion builds the one-line headline for a spread. Only specific
// positions feed it; the celtic cross reads the first and last card only.
func (c *Composer) conclusion(spread domain.SpreadType, cards []domain.DrawnCard) string {
	if len(cards) == 0 {
		return ""
	}
	switch spread {
	case domain.SpreadThreeCard:
		if len(cards) >= 3 {
			t := timelineTemplates[c.pick(len(timelineTemplates))]
			return t(firstKeyword(cards[0]), firstKeyword(cards[1]), firstKeyword(cards[2]))
		}
	case domain.SpreadFiveCard:
		if len(cards) >= 5 {
			t := adviceTemplates[c.pick(len(adviceTemplates))]
			return t(firstKeyword(cards[0]), firstKeyword(cards[3]), firstKeyword(cards[4]))
		}
	case domain.SpreadCelticCross:
		if len(cards) >= 10 {
			t := arcTemplates[c.pick(len(arcTemplates))]
			return t(firstKeyword(cards[0]), firstKeyword(cards[9]))
		}
	}
	t := singleTemplates[c.pick(len(singleTemplates))]
	return t(firstKeyword(cards[0]))
}

func firstKeyword(dc domain.DrawnCard) string {
	if len(dc.CurrentKeywords) > 0 {
		return dc.CurrentKeywords[0]
	}
	kws := dc.UprightKeywords
	if dc.IsReversed() && len(dc.ReversedKeywords) > 0 {
		kws = dc.ReversedKeywords
	}
	if len(kws) > 0 {
		return kws[0]
	}
	return dc.DisplayName()
}
