package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"

	"github.com/moonpath/tarotd/internal/domain"
)

const deckQuery = `SELECT name, number, arcana, element, suit, meaning_key, meaning_upright, meaning_reversed, description, image_url FROM tarot_cards ORDER BY id`

// Store implements ports.CardRepository over a Postgres tarot_cards
// table. The deck is static reference data: it is loaded once on first
// use and cached for the life of the process. The mutex keeps a
// first-traffic burst from loading twice and lets a failed load be
// retried on the next call.
type Store struct {
	db *sql.DB

	mu   sync.Mutex
	deck []domain.Card
}

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return NewStore(db), nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetDeck returns a private copy of the canonical deck, loading it from
// the database on first call.
func (s *Store) GetDeck(ctx context.Context) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		deck, err := s.loadDeck(ctx)
		if err != nil {
			return nil, fmt.Errorf("load deck: %w", err)
		}
		s.deck = deck
	}

	out := make([]domain.Card, len(s.deck))
	copy(out, s.deck)
	return out, nil
}

// Refresh discards the cached deck and reloads it. Manual operability
// hook; nothing calls it on the request path.
func (s *Store) Refresh(ctx context.Context) error {
	deck, err := s.loadDeck(ctx)
	if err != nil {
		return fmt.Errorf("reload deck: %w", err)
	}

	s.mu.Lock()
	s.deck = deck
	s.mu.Unlock()
	return nil
}

// Ping verifies the database connection for the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) loadDeck(ctx context.Context) ([]domain.Card, error) {
	rows, err := s.db.QueryContext(ctx, deckQuery)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var deck []domain.Card
	for rows.Next() {
		var (
			c       domain.Card
			number  sql.NullInt64
			element sql.NullString
			suit    sql.NullString
			key     sql.NullString
			up      sql.NullString
			rev     sql.NullString
			desc    sql.NullString
			img     sql.NullString
		)
		if err := rows.Scan(&c.Name, &number, &c.Arcana, &element, &suit, &key, &up, &rev, &desc, &img); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		if number.Valid {
			n := int(number.Int64)
			c.Number = &n
		}
		c.Element = element.String
		c.Suit = suit.String
		c.MeaningKey = key.String
		c.MeaningUpright = up.String
		c.MeaningReversed = rev.String
		c.Description = desc.String
		c.ImageURL = img.String

		deck = append(deck, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return deck, nil
}
