package app

import (
	"fmt"
	"strings"

	"github.com/moonpath/tarotd/internal/domain"
)

// SystemPrompt is the fixed persona instruction sent with every
// interpretation request.
const SystemPrompt = `You are a wise and mystical tarot reader with decades of experience interpreting the cards. You speak with warmth, insight, and a touch of mystery. Your readings blend traditional tarot symbolism with intuitive guidance, helping seekers find clarity and direction in their lives.

When interpreting cards, you:
- Weave the card meanings into a cohesive narrative
- Consider the interplay between cards in the spread
- Balance honesty with encouragement
- Use evocative, mystical language while remaining clear and accessible
- Speak directly to the seeker's situation with empathy, warmth, clarity, and symbolic insight.
- Interpret cards metaphorically, not literally.
- Reversed cards indicate blocked, internalized, or distorted energy.
- Do not predict fixed outcomes or give absolute statements.
- Do not mention chance, randomness, or AI.
- Offer reflection, not instruction.
`

var depthInstructions = map[domain.Depth]string{
	domain.DepthLight: `
Focus on surface themes and emotional resonance.
Keep symbolism accessible and direct.
`,
	domain.DepthStandard: `
Balance symbolism with practical reflection.
Connect card imagery to inner states and choices.
`,
	domain.DepthDeep: `
Explore archetypal symbolism and underlying patterns.
Reflect on subconscious dynamics and long-term themes.
`,
}

// ComposePrompt renders the user prompt for one reading. It is pure:
// identical inputs yield byte-identical output. An unrecognized depth
// falls back to standard guidance.
func ComposePrompt(question string, cards []domain.DrawnCard, spreadName string, depth domain.Depth) string {
	guidance, ok := depthInstructions[depth]
	if !ok {
		guidance = depthInstructions[domain.DepthStandard]
	}

	return fmt.Sprintf(`
The seeker asks:
%q

Spread used: %s

Cards drawn:
%s

Interpretation depth:
%s

Instructions:
- Interpret each card in its position.
- Weave the cards into a cohesive narrative.
- End with gentle guidance, not commands.
- Limit the reading to around 200 words or less.
`, question, spreadName, formatCards(cards), guidance)
}

func formatCards(cards []domain.DrawnCard) string {
	lines := make([]string, 0, len(cards))
	for _, card := range cards {
		lines = append(lines, fmt.Sprintf(`- %s
    - Position Meaning: %s
    - Orientation Meaning: %s
    - Card Meaning: %s
    - Card Description: %s`,
			card.Name, card.PositionMeaning, card.OrientationMeaning, card.MeaningKey, card.Description))
	}
	return strings.Join(lines, "\n")
}
