package ports

import (
	"context"

	"github.com/moonpath/tarotd/internal/domain"
)

// CardRepository supplies the canonical tarot deck.
type CardRepository interface {
	// GetDeck returns the full deck in canonical order. The slice is a
	// private copy; callers may shuffle it freely.
	GetDeck(ctx context.Context) ([]domain.Card, error)
	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
