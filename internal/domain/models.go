package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Orientation represents the orientation of a drawn tarot card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// ParseOrientation validates a client-supplied orientation string.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case Upright:
		return Upright, nil
	case Reversed:
		return Reversed, nil
	default:
		return "", ErrInvalidOrientation
	}
}

// Depth controls how much archetypal detail an interpretation carries.
type Depth string

const (
	DepthLight    Depth = "light"
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

// ParseDepth validates a depth string; empty input defaults to standard.
func ParseDepth(s string) (Depth, error) {
	switch Depth(s) {
	case "":
		return DepthStandard, nil
	case DepthLight, DepthStandard, DepthDeep:
		return Depth(s), nil
	default:
		return "", ErrInvalidDepth
	}
}

// Card is a canonical card from the repository deck. Identity is Name.
// Number is nil for unranked trumps.
type Card struct {
	Name            string
	Number          *int
	Arcana          string
	Element         string
	Suit            string
	MeaningKey      string
	MeaningUpright  string
	MeaningReversed string
	Description     string
	ImageURL        string
}

// MeaningFor returns the meaning text matching the given orientation.
func (c Card) MeaningFor(o Orientation) string {
	if o == Reversed {
		return c.MeaningReversed
	}
	return c.MeaningUpright
}

// DrawnCard is a card bound to one spread position for a single reading.
type DrawnCard struct {
	Card
	Position           int
	PositionMeaning    string
	Orientation        Orientation
	OrientationMeaning string
}

// ClientCard is the public card shape a client reports back when asking
// for an interpretation of a previously drawn reading. It carries no
// meaning texts; those are resolved from the canonical deck at bind time.
type ClientCard struct {
	Name        string
	Number      *int
	Arcana      string
	Element     string
	Suit        string
	Position    int
	Orientation Orientation
	ImageURL    string
}
