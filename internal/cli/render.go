package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/text/width"

	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
)

const defaultWidth = 80

// painter applies colours when enabled. fatih/color additionally turns
// itself off when stdout is not a terminal.
type painter struct{ enabled bool }

func (p painter) paint(s string, attrs ...color.Attribute) string {
	if !p.enabled {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

func (p painter) orientation(o domain.Orientation) string {
	if o == domain.Reversed {
		return p.paint(o.Label(), color.FgRed)
	}
	return p.paint(o.Label(), color.FgGreen)
}

func (p painter) strength(s interpret.Strength, text string) string {
	switch s {
	case interpret.StrengthStrong:
		return p.paint(text, color.FgMagenta, color.Bold)
	case interpret.StrengthModerate:
		return p.paint(text, color.FgYellow)
	default:
		return p.paint(text, color.FgBlue)
	}
}

func terminalWidth(override int) int {
	if override > 0 {
		return override
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// displayWidth counts wide and fullwidth runes (Hangul, CJK) as two columns.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// wrapText breaks text into lines of at most w columns, splitting on spaces.
func wrapText(text string, w int) []string {
	if w < 10 {
		w = 40
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	lineWidth := displayWidth(line)
	for _, word := range words[1:] {
		ww := displayWidth(word)
		if lineWidth+1+ww <= w {
			line += " " + word
			lineWidth += 1 + ww
			continue
		}
		lines = append(lines, line)
		line, lineWidth = word, ww
	}
	return append(lines, line)
}

func writeWrapped(out io.Writer, text, indent string, w int) {
	for _, l := range wrapText(text, w-displayWidth(indent)) {
		fmt.Fprintln(out, indent+l)
	}
}

// renderReading prints a composed reading section by section.
func renderReading(out io.Writer, res interpret.Result, question string, w int, p painter) {
	fmt.Fprintln(out)
	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintln(out, p.paint("질문: ", color.FgCyan)+q)
	}
	fmt.Fprintln(out, p.paint("스프레드: ", color.FgCyan)+
		p.paint(fmt.Sprintf("%s · %s운", res.SpreadName, interpret.CategoryLabel(res.Category)), color.Bold))

	for _, sec := range res.Sections {
		dc := sec.Card
		name := dc.Name
		if dc.KoreanName != "" && dc.KoreanName != dc.Name {
			name += " (" + dc.KoreanName + ")"
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %s · %s\n",
			p.paint("["+sec.Label+"]", color.FgCyan),
			p.paint(name, color.Bold, color.FgHiWhite),
			p.orientation(dc.Orientation))
		if len(sec.Keywords) > 0 {
			fmt.Fprintln(out, "  "+p.paint("키워드: "+strings.Join(sec.Keywords, ", "), color.Faint))
		}
		writeWrapped(out, sec.Interpretation, "  ", w)
	}

	if len(res.Synergies) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.paint("✦ 카드의 조합", color.FgCyan, color.Bold))
		for _, m := range res.Synergies {
			for i, l := range wrapText(m.Sentence, w-4) {
				prefix := "  - "
				if i > 0 {
					prefix = "    "
				}
				fmt.Fprintln(out, prefix+p.strength(m.Strength, l))
			}
		}
	}

	if res.Conclusion != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.paint("✦ 핵심 결론", color.FgCyan, color.Bold))
		writeWrapped(out, res.Conclusion, "  ", w)
	}
	if res.Message != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.paint("✦ 당신을 위한 메시지", color.FgCyan, color.Bold))
		writeWrapped(out, res.Message, "  ", w)
	}
	fmt.Fprintln(out)
}
