// Package interpret turns drawn cards and a question into Korean reading
// text: question classification, contextual card sentences, synergy
// detection and per-spread composition.
package interpret

import (
	"strings"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

type categoryKeywords struct {
	category domain.Category
	keywords []string
}

// classifierRules is checked in order; the first category with a matching
// keyword wins. Only Korean keywords are recognised.
var classifierRules = []categoryKeywords{
	{domain.CategoryLove, []string{
		"사랑", "연애", "애인", "남자친구", "여자친구", "남친", "여친", "결혼", "짝사랑",
		"이별", "재회", "썸", "고백", "연인", "궁합", "소개팅", "데이트",
	}},
	{domain.CategoryCareer, []string{
		"직장", "취업", "승진", "이직", "커리어", "업무", "사업", "면접", "회사",
		"진로", "시험", "합격", "창업", "동료", "상사", "프로젝트",
	}},
	{domain.CategoryMoney, []string{
		"돈", "재물", "금전", "투자", "주식", "재정", "월급", "부자", "로또",
		"수입", "대출", "부동산", "코인", "재테크", "빚",
	}},
	{domain.CategoryHealth, []string{
		"건강", "질병", "아픔", "다이어트", "운동", "치료", "수술", "병원",
		"회복", "컨디션", "스트레스", "수면",
	}},
}

// Classify maps a free-text question to a category by keyword presence.
func Classify(question string) domain.Category {
	q := strings.ToLower(question)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneral
}

// CategoryLabel returns the Korean label for a category.
func CategoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryLove:
		return "연애"
	case domain.CategoryCareer:
		return "직업"
	case domain.CategoryMoney:
		return "금전"
	case domain.CategoryHealth:
		return "건강"
	default:
		return "종합"
	}
}
