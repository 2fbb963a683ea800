package interpret

import "github.com/randomtoy/tarot-reader/internal/domain"

const (
	love    = domain.CategoryLove
	career  = domain.CategoryCareer
	money   = domain.CategoryMoney
	health  = domain.CategoryHealth
	general = domain.CategoryGeneral
)

var defaultContextual = ContextTable{
	"The Fool": {
		love:    "설레는 새로운 인연이 찾아오거나 관계에 신선한 바람이 붑니다. 계산하지 말고 마음을 열어보세요.",
		career:  "새로운 분야나 프로젝트에 도전하기 좋은 때입니다. 경험이 부족해도 배우려는 자세가 문을 엽니다.",
		money:   "새로운 수입원의 가능성이 보이지만 충동적인 지출은 피하세요.",
		health:  "가벼운 마음으로 새로운 운동이나 생활 습관을 시작해 보세요. 다만 부주의로 인한 부상에 유의하세요.",
		general: "익숙한 틀을 벗어나 새로운 여정을 시작할 때입니다. 두려움보다 호기심이 앞서도 괜찮습니다.",
	},
	"The Magician": {
		love:    "적극적으로 마음을 표현하면 원하는 관계를 만들어갈 수 있습니다. 대화가 열쇠입니다.",
		career:  "당신의 능력을 보여줄 무대가 마련됩니다. 준비한 기술을 자신 있게 펼치세요.",
		money:   "재능을 수익으로 바꿀 기회가 있습니다. 구체적인 실행 계획을 세우세요.",
		health:  "스스로 건강을 관리할 힘이 충분합니다. 의지를 가지고 생활 리듬을 주도하세요.",
		general: "필요한 모든 것이 이미 갖춰져 있습니다. 생각을 행동으로 옮기면 결과가 따라옵니다.",
	},
	"The High Priestess": {
		love:    "드러나지 않은 감정이 흐르고 있습니다. 서두르지 말고 상대의 마음을 조용히 헤아려 보세요.",
		career:  "정보를 모으고 때를 기다리는 것이 유리합니다. 직감이 중요한 판단을 도와줍니다.",
		money:   "보이지 않는 변수가 있으니 큰 결정은 충분히 알아본 뒤에 하세요.",
		health:  "몸이 보내는 작은 신호에 귀 기울이세요. 충분한 휴식과 명상이 도움이 됩니다.",
		general: "답은 이미 마음속에 있습니다. 고요한 시간 속에서 직관의 목소리를 들어보세요.",
	},
	"The Empress": {
		love:    "따뜻하고 풍성한 사랑이 무르익습니다. 서로를 돌보는 마음이 관계를 깊게 합니다.",
		career:  "창의적인 아이디어가 결실을 맺습니다. 편안한 환경에서 능력이 더욱 빛납니다.",
		money:   "재정적으로 넉넉해지는 흐름입니다. 풍요를 누리되 나눔도 잊지 마세요.",
		health:  "몸과 마음이 회복되는 시기입니다. 잘 먹고 잘 쉬는 것이 최고의 처방입니다.",
		general: "노력한 만큼 풍성하게 거두는 시기입니다. 주변을 돌보는 여유가 행운을 키웁니다.",
	},
	"The Emperor": {
		love:    "안정적이고 책임감 있는 관계가 형성됩니다. 다만 상대를 통제하려 하지는 마세요.",
		career:  "리더십을 발휘할 기회가 옵니다. 체계적인 계획과 원칙이 성과를 만듭니다.",
		money:   "규칙적인 관리와 계획적인 지출이 재정을 튼튼하게 합니다.",
		health:  "규칙적인 생활 습관이 건강을 지켜줍니다. 과로에는 주의하세요.",
		general: "질서와 책임감으로 상황을 주도할 때입니다. 흔들리지 않는 기준을 세우세요.",
	},
	"The Hierophant": {
		love:    "진지하고 전통적인 관계로 발전할 수 있습니다. 가족이나 주변의 축복이 함께합니다.",
		career:  "멘토나 선배의 조언이 큰 도움이 됩니다. 정해진 절차를 따르는 것이 안전합니다.",
		money:   "검증된 방법으로 안정적으로 관리하세요. 무리한 투기는 맞지 않습니다.",
		health:  "전문가의 조언을 따르는 것이 좋습니다. 기본에 충실한 관리가 효과적입니다.",
		general: "오랜 지혜와 가르침 속에 답이 있습니다. 믿을 수 있는 사람에게 조언을 구하세요.",
	},
	"The Lovers": {
		love:    "서로에게 깊이 끌리는 조화로운 사랑입니다. 마음을 확인하고 함께 미래를 그려보세요.",
		career:  "중요한 선택의 기로에 섰습니다. 가치관에 맞는 길을 택하면 좋은 협력자를 만납니다.",
		money:   "재정적 결정에서 파트너와의 합의가 중요합니다. 원칙에 맞는 선택을 하세요.",
		health:  "몸과 마음의 조화가 필요합니다. 사랑하는 사람과 함께하는 활동이 활력을 줍니다.",
		general: "마음이 진정으로 원하는 것을 선택할 때입니다. 선택에는 책임도 함께 따릅니다.",
	},
	"The Chariot": {
		love:    "적극적인 태도가 관계를 앞으로 이끕니다. 서로 다른 점을 조율하며 함께 나아가세요.",
		career:  "목표를 향해 힘차게 전진하는 시기입니다. 경쟁에서도 승리할 수 있습니다.",
		money:   "적극적인 노력으로 수입을 늘릴 수 있습니다. 방향을 분명히 하세요.",
		health:  "활력이 넘치고 회복력이 좋습니다. 꾸준한 운동으로 에너지를 다스리세요.",
		general: "강한 의지로 장애물을 돌파할 수 있습니다. 흔들리지 말고 목표만 바라보세요.",
	},
	"Strength": {
		love:    "부드러운 인내가 관계를 지켜줍니다. 감정을 다스리며 따뜻하게 대하세요.",
		career:  "어려운 상황도 침착함과 끈기로 이겨낼 수 있습니다. 당신의 내공이 인정받습니다.",
		money:   "조급해하지 않고 꾸준히 관리하면 재정이 안정됩니다.",
		health:  "회복력이 강해지는 시기입니다. 마음의 힘이 몸의 건강을 이끕니다.",
		general: "진정한 힘은 부드러움에서 나옵니다. 자신을 믿고 차분히 상황을 다스리세요.",
	},
	"The Hermit": {
		love:    "관계에서 잠시 거리를 두고 자신의 마음을 돌아볼 시간이 필요합니다.",
		career:  "혼자 깊이 연구하고 전문성을 쌓기 좋은 때입니다. 서두르지 마세요.",
		money:   "소비를 줄이고 재정 상태를 차분히 점검하세요.",
		health:  "충분한 휴식과 혼자만의 시간이 회복을 돕습니다.",
		general: "내면을 탐구하는 시간이 필요합니다. 고요함 속에서 길이 보입니다.",
	},
	"Wheel of Fortune": {
		love:    "운명적인 만남이나 관계의 전환점이 찾아옵니다. 흐름을 자연스럽게 받아들이세요.",
		career:  "예상치 못한 기회가 찾아옵니다. 변화의 흐름에 올라타면 도약할 수 있습니다.",
		money:   "재정 흐름이 바뀌는 시기입니다. 좋은 기회를 놓치지 않되 기복에 대비하세요.",
		health:  "컨디션의 변화가 있을 수 있습니다. 생활 리듬을 유연하게 조절하세요.",
		general: "운의 흐름이 바뀌고 있습니다. 변화를 두려워하지 말고 기회로 삼으세요.",
	},
	"Justice": {
		love:    "서로에게 공정하고 솔직한 태도가 필요합니다. 균형 잡힌 관계가 오래갑니다.",
		career:  "노력한 만큼 공정하게 평가받습니다. 계약이나 서류는 꼼꼼히 확인하세요.",
		money:   "수입과 지출의 균형을 맞추세요. 법적·계약 문제는 원칙대로 처리하세요.",
		health:  "생활의 균형이 건강의 핵심입니다. 무리한 부분을 바로잡으세요.",
		general: "뿌린 대로 거두는 시기입니다. 정직한 선택이 좋은 결과로 돌아옵니다.",
	},
	"The Hanged Man": {
		love:    "관계가 잠시 멈춘 듯하지만 다른 시각으로 바라보면 새로운 이해가 생깁니다.",
		career:  "진행이 더디지만 지금은 준비하는 시간입니다. 관점을 바꾸면 해법이 보입니다.",
		money:   "당장의 수익보다 장기적인 관점이 필요합니다. 성급한 결정은 미루세요.",
		health:  "몸이 쉬라고 말하고 있습니다. 속도를 늦추고 회복에 집중하세요.",
		general: "기다림 속에서 깨달음을 얻는 시기입니다. 잠시 내려놓아도 괜찮습니다.",
	},
	"Death": {
		love:    "관계가 큰 변화를 맞이합니다. 낡은 패턴을 끝내야 새로운 사랑이 자랍니다.",
		career:  "하나의 일이 마무리되고 새로운 국면이 열립니다. 변화를 기회로 받아들이세요.",
		money:   "재정 구조를 과감히 정리할 때입니다. 불필요한 지출을 끊어내세요.",
		health:  "나쁜 습관을 끝내고 새롭게 시작하기 좋은 때입니다.",
		general: "하나의 장이 끝나고 새로운 장이 시작됩니다. 끝은 곧 새로운 시작입니다.",
	},
	"Temperance": {
		love:    "서로 맞춰가며 조화를 이루는 관계입니다. 인내와 배려가 사랑을 깊게 합니다.",
		career:  "협력과 조율이 성과를 만듭니다. 서두르지 말고 균형을 지키세요.",
		money:   "절제된 소비와 꾸준한 저축이 안정을 가져옵니다.",
		health:  "몸과 마음의 균형을 되찾는 치유의 시기입니다. 적당함을 지키세요.",
		general: "균형과 중용이 답입니다. 서로 다른 것을 조화롭게 섞어보세요.",
	},
	"The Devil": {
		love:    "강한 끌림이 있지만 집착이나 의존으로 흐르지 않도록 주의하세요.",
		career:  "돈이나 지위에 얽매여 있지 않은지 돌아보세요. 불건전한 관계를 경계하세요.",
		money:   "유혹적인 제안이나 과소비를 조심하세요. 빚에 묶이지 않도록 하세요.",
		health:  "중독성 있는 습관을 점검하세요. 절제가 필요합니다.",
		general: "무언가에 얽매여 있습니다. 스스로를 묶은 사슬을 알아차리는 것이 먼저입니다.",
	},
	"The Tower": {
		love:    "갑작스러운 변화나 진실이 드러날 수 있습니다. 흔들림 뒤에 관계의 본질이 보입니다.",
		career:  "예상치 못한 변화가 일어날 수 있습니다. 무너진 자리에서 더 단단한 기반을 세우세요.",
		money:   "갑작스러운 지출이나 손실에 대비하세요. 위험한 투자는 피하는 것이 좋습니다.",
		health:  "갑작스러운 컨디션 난조에 주의하세요. 무리하지 마세요.",
		general: "기존의 틀이 흔들리는 시기입니다. 충격 뒤에 진짜 중요한 것이 드러납니다.",
	},
	"The Star": {
		love:    "상처가 치유되고 희망적인 사랑이 다가옵니다. 순수한 마음을 믿으세요.",
		career:  "꿈꾸던 방향으로 나아갈 영감을 얻습니다. 장기적인 목표를 세우기 좋습니다.",
		money:   "재정 상황이 서서히 회복됩니다. 희망을 가지고 꾸준히 관리하세요.",
		health:  "회복과 치유의 에너지가 가득합니다. 긍정적인 마음이 건강을 돕습니다.",
		general: "어둠 뒤에 희망의 빛이 비칩니다. 꿈을 포기하지 마세요.",
	},
	"The Moon": {
		love:    "상대의 마음이 잘 보이지 않아 불안할 수 있습니다. 추측보다 대화가 필요합니다.",
		career:  "상황이 불분명하니 중요한 결정은 신중하게 하세요. 숨은 정보에 주의하세요.",
		money:   "불확실한 투자나 제안을 경계하세요. 확인되지 않은 정보는 믿지 마세요.",
		health:  "불안과 스트레스가 몸에 영향을 줄 수 있습니다. 충분한 수면을 취하세요.",
		general: "모든 것이 선명하지 않은 시기입니다. 막연한 두려움과 직감을 구분하세요.",
	},
	"The Sun": {
		love:    "밝고 행복한 사랑이 빛납니다. 솔직하게 마음을 표현하면 좋은 결과가 있습니다.",
		career:  "성공과 인정이 따르는 시기입니다. 자신감을 가지고 앞으로 나아가세요.",
		money:   "재정적으로 밝은 흐름입니다. 노력의 결실이 눈에 보입니다.",
		health:  "활력과 에너지가 넘칩니다. 야외 활동이 건강에 좋습니다.",
		general: "밝은 에너지가 모든 일을 비춥니다. 기쁨을 마음껏 누리세요.",
	},
	"Judgement": {
		love:    "지난 관계를 돌아보고 새롭게 시작할 기회가 옵니다. 재회나 관계의 재정립이 가능합니다.",
		career:  "그동안의 노력이 평가받고 새로운 소명을 발견합니다. 부름에 응답하세요.",
		money:   "과거의 재정 습관을 돌아보고 새롭게 정비할 때입니다.",
		health:  "건강을 위한 각성의 시기입니다. 생활 방식을 새롭게 바꿔보세요.",
		general: "과거를 정리하고 새롭게 태어날 때입니다. 내면의 부름에 귀 기울이세요.",
	},
	"The World": {
		love:    "관계가 완성의 단계에 이릅니다. 함께 이룬 것을 축하하고 다음 여정을 그려보세요.",
		career:  "목표를 성취하고 인정받습니다. 새로운 무대로 나아갈 준비가 되었습니다.",
		money:   "재정적 목표를 달성하는 흐름입니다. 이룬 것을 지키며 다음을 계획하세요.",
		health:  "몸과 마음이 조화를 이룬 좋은 상태입니다. 지금의 균형을 유지하세요.",
		general: "하나의 여정이 완성됩니다. 성취를 축하하고 새로운 시작을 준비하세요.",
	},
}
