package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/moonpath/tarotd/internal/domain"
)

// Keys are declared in alphabetical order so the encoded form is canonical.
type hashedCard struct {
	Arcana      string             `json:"arcana"`
	Element     string             `json:"element"`
	ImageURL    string             `json:"image_url"`
	Name        string             `json:"name"`
	Number      *int               `json:"number"`
	Orientation domain.Orientation `json:"orientation"`
	Position    int                `json:"position"`
	Suit        string             `json:"suit"`
}

type hashedReading struct {
	Cards    []hashedCard `json:"cards"`
	Question string       `json:"question"`
}

// ReadingHash returns a stable identifier for a (question, cards) pair.
// The question is case- and surrounding-whitespace-insensitive; card
// order and orientation are significant.
func ReadingHash(question string, cards []domain.ClientCard) string {
	payload := hashedReading{
		Cards:    make([]hashedCard, 0, len(cards)),
		Question: strings.ToLower(strings.TrimSpace(question)),
	}
	for _, c := range cards {
		payload.Cards = append(payload.Cards, hashedCard{
			Arcana:      c.Arcana,
			Element:     c.Element,
			ImageURL:    c.ImageURL,
			Name:        c.Name,
			Number:      c.Number,
			Orientation: c.Orientation,
			Position:    c.Position,
			Suit:        c.Suit,
		})
	}

	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
