package interpret

import "github.com/randomtoy/tarot-reader/internal/domain"

// ReversedQualifier is appended to every reversed-card sentence.
const ReversedQualifier = " 다만 역방향으로 나타나 장애물이나 지연이 따를 수 있으며, 이 에너지가 과하거나 부족할 수 있습니다."

// ContextTable maps an English card name to per-category sentences. A
// card's general entry is used when its category has none.
type ContextTable map[string]map[domain.Category]string

// DefaultContextTable returns the built-in sentences for the major arcana.
func DefaultContextTable() ContextTable {
	return defaultContextual
}

// Interpret returns the contextual sentence for c under category using the
// built-in table.
func Interpret(c domain.Card, category domain.Category, reversed bool) string {
	return defaultContextual.Interpret(c, category, reversed)
}

// Interpret looks up c by name, falling back to the card's generic
// interpretation when the table has no entry. The result never contains the
// card name.
func (t ContextTable) Interpret(c domain.Card, category domain.Category, reversed bool) string {
	text := t.lookup(c.Name, category)
	if text == "" {
		text = c.UprightInterpretation
		if reversed && c.ReversedInterpretation != "" {
			text = c.ReversedInterpretation
		}
	}
	if reversed {
		text += ReversedQualifier
	}
	return text
}

func (t ContextTable) lookup(name string, category domain.Category) string {
	entries, ok := t[name]
	if !ok {
		return ""
	}
	if s, ok := entries[category]; ok && s != "" {
		return s
	}
	return entries[domain.CategoryGeneral]
}
