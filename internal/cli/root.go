// Package cli implements the tarot command line tool.
package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/randomtoy/tarot-reader/internal/adapters/decks"
	"github.com/randomtoy/tarot-reader/internal/config"
	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/ports"
)

// Deps are the collaborators the commands run against.
type Deps struct {
	Catalog ports.CardCatalog
	// NewRNG returns the random source for a draw. seed 0 means unseeded.
	NewRNG     func(seed uint64) domain.RNG
	LoadConfig func() (config.CLIConfig, error)
	// Width overrides the terminal width when positive.
	Width int
}

// DefaultDeps uses the embedded catalog and the XDG config file.
func DefaultDeps() Deps {
	return Deps{
		Catalog:    decks.NewEmbeddedStore(),
		NewRNG:     newRNG,
		LoadConfig: config.LoadCLI,
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(d Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "tarot",
		Short: "Korean tarot readings from the terminal",
		Long: `tarot draws cards, classifies questions and composes Korean readings
using the same interpretation engine as the tarotd server.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	root.AddCommand(
		newDrawCmd(d),
		newSpreadsCmd(),
		newCardCmd(d),
		newClassifyCmd(),
		newValidateCmd(d),
	)
	return root
}

// Execute runs the CLI with default dependencies.
func Execute() error {
	return NewRootCmd(DefaultDeps()).Execute()
}

type randRNG struct{ r *rand.Rand }

func (g randRNG) Intn(n int) int { return g.r.IntN(n) }

type globalRNG struct{}

func (globalRNG) Intn(n int) int { return rand.IntN(n) }

func newRNG(seed uint64) domain.RNG {
	if seed == 0 {
		return globalRNG{}
	}
	return randRNG{r: rand.New(rand.NewPCG(seed, seed))}
}
