package interpret

import "github.com/randomtoy/tarot-reader/internal/domain"

var personalMessages = map[domain.Category][]string{
	domain.CategoryLove: {
		"사랑은 서두른다고 빨리 오지 않습니다. 지금의 나를 아끼는 마음이 좋은 인연을 부릅니다.",
		"마음을 솔직하게 전하는 용기가 관계를 한 걸음 더 가깝게 만듭니다.",
		"상대의 속도를 존중하면서도 당신의 마음을 잃지 마세요.",
	},
	domain.CategoryCareer: {
		"작은 성취를 하나씩 쌓아 가면 어느새 원하는 자리에 서 있을 것입니다.",
		"지금의 경험은 어떤 형태로든 당신의 경력이 됩니다. 배움을 멈추지 마세요.",
		"주변의 평가보다 스스로 세운 기준을 믿으세요.",
	},
	domain.CategoryMoney: {
		"들어오는 것만큼 나가는 흐름을 살피면 재물은 자연스럽게 모입니다.",
		"조급한 욕심보다 꾸준한 관리가 더 큰 결실을 가져옵니다.",
		"돈에 대한 불안을 기록하고 계획으로 바꿔 보세요. 막연함이 줄어듭니다.",
	},
	domain.CategoryHealth: {
		"몸이 보내는 신호를 무시하지 마세요. 충분한 휴식도 실력입니다.",
		"작은 습관 하나가 큰 변화를 만듭니다. 오늘 물 한 잔, 산책 한 번부터 시작하세요.",
		"마음의 건강이 몸의 건강을 이끕니다. 스스로를 너그럽게 대해 주세요.",
	},
	domain.CategoryGeneral: {
		"카드는 방향을 비출 뿐, 걸어가는 것은 당신입니다. 오늘 하루도 당신의 선택을 믿으세요.",
		"지금 느끼는 감정에는 모두 이유가 있습니다. 천천히 들여다보면 답이 보입니다.",
		"흐름은 언제든 바뀔 수 있습니다. 좋은 기운은 붙잡고 나쁜 기운은 흘려보내세요.",
	},
}

// personalMessage picks a closing message for the category.
func (c *Composer) personalMessage(category domain.Category) string {
	msgs, ok := personalMessages[category]
	if !ok {
		msgs = personalMessages[domain.CategoryGeneral]
	}
	return msgs[c.pick(len(msgs))]
}
