package ports

import "context"

// NarrateInput holds a composed reading for an LLM to retell.
type NarrateInput struct {
	Spread         string
	Question       string
	Category       string
	Cards          []CardInput
	Interpretation string
}

// CardInput is a simplified card representation for the LLM prompt.
type CardInput struct {
	Name        string
	Position    string
	Orientation string
	Keywords    []string
}

// NarrateOutput is the structured narrative returned by the LLM.
type NarrateOutput struct {
	Text       string `json:"text"`
	Disclaimer string `json:"disclaimer"`
	Model      string `json:"-"`
}

// Narrator retells a templated reading as a short narrative.
type Narrator interface {
	Narrate(ctx context.Context, in NarrateInput) (NarrateOutput, error)
}
