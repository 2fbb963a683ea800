package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
)

func newSpreadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spreads",
		Short: "List the available spreads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, sp := range domain.Spreads() {
				labels := make([]string, len(sp.Positions))
				for i, pos := range sp.Positions {
					labels[i] = pos.Label
				}
				fmt.Fprintf(out, "%-13s %s (%d장, %s)\n", sp.ID, sp.Name, sp.CardCount, sp.Complexity)
				fmt.Fprintf(out, "              %s\n", sp.Description)
				fmt.Fprintf(out, "              %s\n", strings.Join(labels, " → "))
			}
			return nil
		},
	}
}

func newCardCmd(d Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "card <id|name>",
		Short: "Show the meanings of a card",
		Long: `Card prints the upright and reversed meanings of a card, looked up by its
numeric id or by its English or Korean name.

Examples:
  tarot card 0
  tarot card "The Tower"
  tarot card 여사제`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			noColor, _ := cmd.Flags().GetBool("no-color")
			p := painter{enabled: !noColor}

			var (
				c   domain.Card
				err error
			)
			if id, convErr := strconv.Atoi(query); convErr == nil {
				c, err = d.Catalog.CardByID(cmd.Context(), id)
			} else {
				c, err = d.Catalog.CardByName(cmd.Context(), query)
			}
			if err != nil {
				return fmt.Errorf("%w: %s", err, query)
			}

			out := cmd.OutOrStdout()
			w := terminalWidth(d.Width)
			field := func(label, value string) {
				fmt.Fprintln(out, p.paint(label+": ", color.FgCyan)+value)
			}

			field("카드", p.paint(c.Name, color.Bold)+" ("+c.DisplayName()+")")
			field("번호", strconv.Itoa(c.ID))
			field("수트", string(c.Suit))

			fmt.Fprintln(out)
			fmt.Fprintln(out, p.orientation(domain.Upright))
			field("  키워드", strings.Join(c.UprightKeywords, ", "))
			field("  의미", c.UprightMeaning)
			writeWrapped(out, c.UprightInterpretation, "  ", w)

			if c.HasReversal {
				fmt.Fprintln(out)
				fmt.Fprintln(out, p.orientation(domain.Reversed))
				field("  키워드", strings.Join(c.ReversedKeywords, ", "))
				field("  의미", c.ReversedMeaning)
				writeWrapped(out, c.ReversedInterpretation, "  ", w)
			}

			if c.ImageRef != "" {
				fmt.Fprintln(out)
				field("이미지", c.ImageRef)
			}
			return nil
		},
	}
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <question>",
		Short: "Show which topic a question falls under",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := interpret.Classify(strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", cat, interpret.CategoryLabel(cat))
			return nil
		},
	}
}
