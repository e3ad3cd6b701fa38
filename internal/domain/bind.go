package domain

// BindReading re-binds previously drawn cards to their spread positions,
// resolving meanings from the canonical deck. The client card for position
// p is clientCards[p.Index-1]. The client's orientation is trusted as-is;
// it is never re-randomized. A card whose name has no canonical match
// contributes nothing to the result.
func BindReading(spread Spread, deck []Card, clientCards []ClientCard) ([]DrawnCard, error) {
	if len(clientCards) < len(spread.Positions) {
		return nil, ErrCardCountMismatch
	}

	bound := make([]DrawnCard, 0, len(spread.Positions))
	for _, pos := range spread.Positions {
		cc := clientCards[pos.Index-1]

		canonical, ok := findCard(deck, cc.Name)
		if !ok {
			continue
		}

		bound = append(bound, DrawnCard{
			Card:               canonical,
			Position:           pos.Index,
			PositionMeaning:    pos.Meaning,
			Orientation:        cc.Orientation,
			OrientationMeaning: canonical.MeaningFor(cc.Orientation),
		})
	}
	return bound, nil
}

func findCard(deck []Card, name string) (Card, bool) {
	for _, c := range deck {
		if c.Name == name {
			return c, true
		}
	}
	return Card{}, false
}
