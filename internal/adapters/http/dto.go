package http

import "github.com/moonpath/tarotd/internal/domain"

// CardDTO is the public card shape: the fields a client sees after a
// draw and sends back for interpretation. Meaning texts are deliberately
// omitted; they are resolved server-side at bind time.
type CardDTO struct {
	Name        string `json:"name"`
	Number      *int   `json:"number"`
	Arcana      string `json:"arcana"`
	Element     string `json:"element"`
	Suit        string `json:"suit"`
	Position    int    `json:"position"`
	Orientation string `json:"orientation"`
	ImageURL    string `json:"image_url"`
}

type DrawRequest struct {
	Spread string `json:"spread"`
}

type DrawResponse struct {
	Cards  []CardDTO `json:"cards"`
	Spread string    `json:"spread"`
}

type InterpretRequest struct {
	Question string    `json:"question"`
	Spread   string    `json:"spread"`
	Cards    []CardDTO `json:"cards"`
	Depth    string    `json:"depth"`
}

type PositionDTO struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	YesNo   bool   `json:"is_yes_no"`
}

type SpreadDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Positions    []PositionDTO `json:"positions"`
	Instructions string        `json:"instructions"`
}

type SpreadsResponse struct {
	Spreads []SpreadDTO `json:"spreads"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toCardDTOs(cards []domain.DrawnCard) []CardDTO {
	out := make([]CardDTO, len(cards))
	for i, dc := range cards {
		out[i] = CardDTO{
			Name:        dc.Name,
			Number:      dc.Number,
			Arcana:      dc.Arcana,
			Element:     dc.Element,
			Suit:        dc.Suit,
			Position:    dc.Position,
			Orientation: string(dc.Orientation),
			ImageURL:    dc.ImageURL,
		}
	}
	return out
}

func toClientCards(cards []CardDTO) ([]domain.ClientCard, error) {
	out := make([]domain.ClientCard, len(cards))
	for i, c := range cards {
		orientation, err := domain.ParseOrientation(c.Orientation)
		if err != nil {
			return nil, err
		}
		out[i] = domain.ClientCard{
			Name:        c.Name,
			Number:      c.Number,
			Arcana:      c.Arcana,
			Element:     c.Element,
			Suit:        c.Suit,
			Position:    c.Position,
			Orientation: orientation,
			ImageURL:    c.ImageURL,
		}
	}
	return out, nil
}

func toSpreadDTO(s domain.Spread) SpreadDTO {
	positions := make([]PositionDTO, len(s.Positions))
	for i, p := range s.Positions {
		positions[i] = PositionDTO{
			Index:   p.Index,
			Name:    p.Name,
			Meaning: p.Meaning,
			YesNo:   p.YesNo,
		}
	}
	return SpreadDTO{
		ID:           s.ID,
		Name:         s.Name,
		Positions:    positions,
		Instructions: s.Instructions,
	}
}
