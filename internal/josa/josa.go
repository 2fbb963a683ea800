// Package josa attaches Korean grammatical particles (josa) whose form
// depends on whether the preceding syllable ends in a consonant.
// Trailing Arabic numerals are read in Sino-Korean ("컵 2" is 컵 이,
// "소드 10" is 소드 십).
package josa

import (
	"strings"
	"unicode/utf8"
)

// Case selects a grammatical particle.
type Case string

const (
	Topic        Case = "topic"        // 은/는
	Subject      Case = "subject"      // 이/가
	Object       Case = "object"       // 을/를
	Conjunctive  Case = "conjunctive"  // 과/와
	Instrumental Case = "instrumental" // 으로/로
	Locative     Case = "locative"     // 에서/서
	Genitive     Case = "genitive"     // 의
)

const (
	hangulFirst = 0xAC00
	hangulLast  = 0xD7A3
	codaCount   = 28
	rieulCoda   = 8 // ㄹ
)

// digitCodas holds the coda of each digit's Sino-Korean reading:
// 영 일 이 삼 사 오 육 칠 팔 구.
var digitCodas = [10]int{21, 8, 0, 16, 0, 0, 1, 8, 8, 0}

// unitCodas holds the coda of the place unit closing a number that ends
// in zeros, indexed by the count of trailing zeros: 십 백 천 만 ... 억.
var unitCodas = [...]int{0, 17, 1, 4, 4, 4, 4, 4, 1}

// allomorphs maps a case to its {after-coda, after-vowel} forms.
var allomorphs = map[Case][2]string{
	Topic:        {"은", "는"},
	Subject:      {"이", "가"},
	Object:       {"을", "를"},
	Conjunctive:  {"과", "와"},
	Instrumental: {"으로", "로"},
	Locative:     {"에서", "서"},
	Genitive:     {"의", "의"},
}

// Attach appends the particle for c to word. Words that end in neither a
// Hangul syllable nor a digit, and unknown cases, are returned unchanged.
func Attach(word string, c Case) string {
	forms, ok := allomorphs[c]
	if !ok {
		return word
	}
	coda, ok := finalCoda(word)
	if !ok {
		return word
	}
	// ㄹ-final words take 로, not 으로.
	if c == Instrumental && coda == rieulCoda {
		return word + forms[1]
	}
	if coda != 0 {
		return word + forms[0]
	}
	return word + forms[1]
}

// HasCoda reports whether word, as read aloud, ends in a final consonant.
// The second result is false when the last rune is neither Hangul nor a
// digit.
func HasCoda(word string) (bool, bool) {
	coda, ok := finalCoda(word)
	return coda != 0, ok
}

// Join joins words as a Korean list ("A, B와 C"), choosing 과/와 by the
// penultimate word. When that word has no reading the last pair is
// separated by a comma as well.
func Join(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	var b strings.Builder
	for _, w := range words[:len(words)-2] {
		b.WriteString(w)
		b.WriteString(", ")
	}
	penult := words[len(words)-2]
	if _, ok := finalCoda(penult); ok {
		b.WriteString(Attach(penult, Conjunctive))
		b.WriteString(" ")
	} else {
		b.WriteString(penult)
		b.WriteString(", ")
	}
	b.WriteString(words[len(words)-1])
	return b.String()
}

func finalCoda(word string) (int, bool) {
	r, _ := utf8.DecodeLastRuneInString(word)
	if r >= '0' && r <= '9' {
		return numberCoda(word), true
	}
	if r == utf8.RuneError || r < hangulFirst || r > hangulLast {
		return 0, false
	}
	return int(r-hangulFirst) % codaCount, true
}

// numberCoda reads the run of digits ending word.
func numberCoda(word string) int {
	digits := word[strings.LastIndexFunc(word, func(r rune) bool { return r < '0' || r > '9' })+1:]
	trimmed := strings.TrimRight(digits, "0")
	if trimmed == "" {
		return digitCodas[0]
	}
	zeros := len(digits) - len(trimmed)
	if zeros == 0 {
		return digitCodas[trimmed[len(trimmed)-1]-'0']
	}
	if zeros >= len(unitCodas) {
		zeros = len(unitCodas) - 1
	}
	return unitCodas[zeros]
}
