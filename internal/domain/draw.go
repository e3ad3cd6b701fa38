package domain

// ReversalProbability is the chance, independent per position, that a
// drawn card lands reversed.
const ReversalProbability = 0.35

// DrawReading shuffles a private copy of deck and deals one card per
// spread position. Position i reads from shuffled slot i (1-based), so
// slot 0 is never dealt; the deck must therefore hold at least one more
// card than the spread has positions.
func DrawReading(spread Spread, deck []Card, rng RNG) ([]DrawnCard, error) {
	if len(deck) <= len(spread.Positions) {
		return nil, ErrDeckTooSmall
	}

	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)

	// Fisher-Yates.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	drawn := make([]DrawnCard, 0, len(spread.Positions))
	for _, pos := range spread.Positions {
		card := shuffled[pos.Index]

		orientation := Upright
		if rng.Float64() < ReversalProbability {
			orientation = Reversed
		}

		drawn = append(drawn, DrawnCard{
			Card:               card,
			Position:           pos.Index,
			PositionMeaning:    pos.Meaning,
			Orientation:        orientation,
			OrientationMeaning: card.MeaningFor(orientation),
		})
	}
	return drawn, nil
}
