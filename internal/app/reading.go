package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moonpath/tarotd/internal/domain"
	"github.com/moonpath/tarotd/internal/ports"
)

// InterpretRequest is the application-level input for an interpretation
// (no HTTP types).
type InterpretRequest struct {
	Question string
	SpreadID string
	Cards    []domain.ClientCard
	Depth    domain.Depth
}

// Reading is a fully bound reading, ready to be interpreted.
type Reading struct {
	Spread   domain.Spread
	Cards    []domain.DrawnCard
	Question string
	Depth    domain.Depth
	Hash     string
}

// ReadingService orchestrates spread lookup, deck access, card drawing
// and interpretation streaming.
type ReadingService struct {
	catalog  domain.Catalog
	repo     ports.CardRepository
	streamer ports.InterpretationStreamer
	rng      domain.RNG
	logger   *slog.Logger
}

func NewReadingService(catalog domain.Catalog, repo ports.CardRepository, streamer ports.InterpretationStreamer, rng domain.RNG, logger *slog.Logger) *ReadingService {
	return &ReadingService{
		catalog:  catalog,
		repo:     repo,
		streamer: streamer,
		rng:      rng,
		logger:   logger,
	}
}

// Spreads returns the catalog contents in stable order.
func (s *ReadingService) Spreads() []domain.Spread {
	return s.catalog.List()
}

// Draw produces a fresh random reading for the named spread.
func (s *ReadingService) Draw(ctx context.Context, spreadID string) (domain.Spread, []domain.DrawnCard, error) {
	spread, err := s.catalog.Lookup(spreadID)
	if err != nil {
		return domain.Spread{}, nil, err
	}

	deck, err := s.repo.GetDeck(ctx)
	if err != nil {
		return domain.Spread{}, nil, fmt.Errorf("get deck: %w", err)
	}

	drawn, err := domain.DrawReading(spread, deck, s.rng)
	if err != nil {
		return domain.Spread{}, nil, fmt.Errorf("draw reading: %w", err)
	}

	s.logger.InfoContext(ctx, "cards drawn", "spread", spreadID, "count", len(drawn))
	return spread, drawn, nil
}

// PrepareReading re-binds a client-reported draw to its spread and
// resolves canonical meanings. An empty bind result is surfaced as
// domain.ErrNoBoundCards so callers can reject the request before any
// streaming begins.
func (s *ReadingService) PrepareReading(ctx context.Context, req InterpretRequest) (Reading, error) {
	spread, err := s.catalog.Lookup(req.SpreadID)
	if err != nil {
		return Reading{}, err
	}

	deck, err := s.repo.GetDeck(ctx)
	if err != nil {
		return Reading{}, fmt.Errorf("get deck: %w", err)
	}

	bound, err := domain.BindReading(spread, deck, req.Cards)
	if err != nil {
		return Reading{}, err
	}
	if len(bound) == 0 {
		return Reading{}, domain.ErrNoBoundCards
	}

	reading := Reading{
		Spread:   spread,
		Cards:    bound,
		Question: req.Question,
		Depth:    req.Depth,
		Hash:     ReadingHash(req.Question, req.Cards),
	}

	s.logger.InfoContext(ctx, "reading prepared",
		"spread", req.SpreadID,
		"reading_hash", reading.Hash,
		"bound_cards", len(bound),
		"depth", string(reading.Depth),
	)
	return reading, nil
}

// StreamInterpretation composes the prompt for a prepared reading and
// relays interpretation fragments to emit as they arrive.
func (s *ReadingService) StreamInterpretation(ctx context.Context, r Reading, emit ports.EmitFunc) error {
	prompt := ComposePrompt(r.Question, r.Cards, r.Spread.Name, r.Depth)
	return s.streamer.StreamInterpretation(ctx, SystemPrompt, prompt, emit)
}
