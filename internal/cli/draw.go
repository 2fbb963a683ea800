package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/interpret"
)

func newDrawCmd(d Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a spread and print its reading",
		Long: `Draw shuffles the 78-card deck, lays out a spread and prints the composed
Korean reading. Without --spread the default spread from the config file is used.

Examples:
  tarot draw -q "이직해도 괜찮을까요?"
  tarot draw --spread celtic-cross --question "올해 연애운은?"
  tarot draw --spread one-card --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spreadID, _ := cmd.Flags().GetString("spread")
			question, _ := cmd.Flags().GetString("question")
			seed, _ := cmd.Flags().GetUint64("seed")
			asJSON, _ := cmd.Flags().GetBool("json")
			noColor, _ := cmd.Flags().GetBool("no-color")

			cfg, err := d.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			if spreadID == "" {
				spreadID = cfg.DefaultSpread
			}
			if len([]rune(question)) > 500 {
				return domain.ErrQuestionTooLong
			}

			spread, err := domain.SpreadByID(domain.SpreadType(spreadID))
			if err != nil {
				return fmt.Errorf("%w: %s (see 'tarot spreads')", err, spreadID)
			}

			cards, err := d.Catalog.Cards(cmd.Context())
			if err != nil {
				return fmt.Errorf("error loading cards: %w", err)
			}

			rng := d.NewRNG(seed)
			drawn, err := domain.DrawCards(cards, spread.CardCount, rng)
			if err != nil {
				return err
			}

			res := interpret.NewComposer(rng).Build(spread.ID, drawn, question, interpret.Classify(question))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			renderReading(out, res, strings.TrimSpace(question), terminalWidth(d.Width), painter{enabled: cfg.Color && !noColor})
			return nil
		},
	}

	cmd.Flags().StringP("spread", "s", "", "Spread to lay out (one-card, three-card, five-card, celtic-cross)")
	cmd.Flags().StringP("question", "q", "", "Question to ask the cards")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible draw")
	cmd.Flags().Bool("json", false, "Print the reading as JSON")
	return cmd
}
