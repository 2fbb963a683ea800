package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randomtoy/tarot-reader/internal/adapters/decks"
)

func newValidateCmd(d Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the card catalog for consistency",
		Long: `Validate checks the embedded card catalog: 78 unique cards, exactly the 22
major arcana reversible, and text present for every orientation a card can take.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, err := d.Catalog.Cards(cmd.Context())
			if err != nil {
				return fmt.Errorf("error loading cards: %w", err)
			}
			results := decks.Validate(cards)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Validation Results:")
			fmt.Fprintln(out, "-------------------")

			if results.OK() {
				fmt.Fprintf(out, "✅ Catalog of %d cards is valid.\n", len(cards))
			} else {
				fmt.Fprintf(out, "❌ Catalog has %d validation errors:\n", len(results.Errors))
				for i, e := range results.Errors {
					fmt.Fprintf(out, "%d. %s\n", i+1, e)
				}
			}

			if len(results.Warnings) > 0 {
				fmt.Fprintln(out, "\nWarnings:")
				for i, w := range results.Warnings {
					fmt.Fprintf(out, "%d. %s\n", i+1, w)
				}
			}

			if !results.OK() {
				return errors.New("validation failed")
			}
			return nil
		},
	}
}
