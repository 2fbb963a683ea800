package domain

// Draw returns n distinct cards chosen uniformly from cards using rng.
// The input slice is not modified.
func Draw(cards []Card, n int, rng RNG) ([]Card, error) {
	if n < 1 || n > len(cards) {
		return nil, ErrInvalidCount
	}

	// Fisher-Yates partial shuffle: only need first n elements.
	indices := make([]int, len(cards))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	out := make([]Card, n)
	for i := range n {
		out[i] = cards[indices[i]]
	}
	return out, nil
}

// Shuffle returns a shuffled copy of cards.
func Shuffle(cards []Card, rng RNG) []Card {
	if len(cards) == 0 {
		return nil
	}
	out, _ := Draw(cards, len(cards), rng)
	return out
}

// ResolveOrientation flips a fair coin for reversible cards. Cards without a
// reversed side are always upright.
func ResolveOrientation(c Card, rng RNG) Orientation {
	if !c.HasReversal {
		return Upright
	}
	if rng.Intn(2) == 1 {
		return Reversed
	}
	return Upright
}

// DrawCards draws n cards and resolves each orientation independently.
// Positions are 1-based in draw order.
func DrawCards(cards []Card, n int, rng RNG) ([]DrawnCard, error) {
	picked, err := Draw(cards, n, rng)
	if err != nil {
		return nil, err
	}
	out := make([]DrawnCard, n)
	for i, c := range picked {
		dc := NewDrawnCard(c, ResolveOrientation(c, rng))
		dc.Position = i + 1
		out[i] = dc
	}
	return out, nil
}
