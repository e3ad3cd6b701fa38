package domain

import "sort"

// SpreadPosition is one slot in a spread layout. Index is 1-based and
// contiguous within a spread.
type SpreadPosition struct {
	Index   int
	Name    string
	Meaning string
	YesNo   bool
}

// Spread is a named, ordered layout of positions used to structure a reading.
type Spread struct {
	ID           string
	Name         string
	Positions    []SpreadPosition
	Instructions string
}

// Catalog maps spread IDs to their definitions. Read-only after construction.
type Catalog map[string]Spread

// Lookup returns the spread for id, or ErrUnknownSpread.
func (c Catalog) Lookup(id string) (Spread, error) {
	s, ok := c[id]
	if !ok {
		return Spread{}, ErrUnknownSpread
	}
	return s, nil
}

// List returns all spreads in stable ID order.
func (c Catalog) List() []Spread {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Spread, 0, len(c))
	for _, id := range ids {
		out = append(out, c[id])
	}
	return out
}

// DefaultCatalog returns the built-in spread table.
func DefaultCatalog() Catalog {
	return Catalog{
		"daily": {
			ID:   "daily",
			Name: "Daily Insight",
			Positions: []SpreadPosition{
				{Index: 1, Name: "Today's Focus", Meaning: "What do I need to know today?"},
			},
			Instructions: "Draw one card to gain insight for the day.",
		},
		"three_card": {
			ID:   "three_card",
			Name: "Past / Present / Future",
			Positions: []SpreadPosition{
				{Index: 1, Name: "Past", Meaning: "What past influences are affecting the situation?"},
				{Index: 2, Name: "Present", Meaning: "What is the current state or challenge?"},
				{Index: 3, Name: "Future", Meaning: "What is the likely outcome or future influence?"},
			},
			Instructions: "Draw three cards representing past, present, and future influences.",
		},
		"mind_body_spirit": {
			ID:   "mind_body_spirit",
			Name: "Mind / Body / Spirit",
			Positions: []SpreadPosition{
				{Index: 1, Name: "Mind", Meaning: "What is the state of the mind?"},
				{Index: 2, Name: "Body", Meaning: "What is the state of the body?"},
				{Index: 3, Name: "Spirit", Meaning: "What is the state of the spirit?"},
			},
			Instructions: "Draw three cards to explore the state of mind, body, and spirit.",
		},
		"love_money_home": {
			ID:   "love_money_home",
			Name: "Love / Money / Home",
			Positions: []SpreadPosition{
				{Index: 1, Name: "Love", Meaning: "What is the state of love or relationships?"},
				{Index: 2, Name: "Money", Meaning: "What is the state of finances or career?"},
				{Index: 3, Name: "Home", Meaning: "What is the state of home or family?"},
			},
			Instructions: "Draw three cards to explore the state of love, money, and home.",
		},
		"decision": {
			ID:   "decision",
			Name: "Option A / Option B / Advice",
			Positions: []SpreadPosition{
				{Index: 1, Name: "Option A", Meaning: "What is the situation or outcome?"},
				{Index: 2, Name: "Option B", Meaning: "What is the situation or outcome?"},
				{Index: 3, Name: "Advice", Meaning: "What advice or guidance is offered?"},
			},
			Instructions: "Draw three cards to compare two options and receive advice.",
		},
		"yes_no": {
			ID:   "yes_no",
			Name: "Yes or No",
			Positions: []SpreadPosition{
				{Index: 1, Name: "Answer", Meaning: "Will the outcome be yes or no?", YesNo: true},
				{Index: 2, Name: "Answer", Meaning: "Will the outcome be yes or no?", YesNo: true},
				{Index: 3, Name: "Answer", Meaning: "Will the outcome be yes or no?", YesNo: true},
			},
			Instructions: "Draw three cards to determine a yes or no answer.",
		},
	}
}
