package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backoffice-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// QuoteStore keeps issued quotes in Redis for the length of their validity
// window. Quotes are immutable, so there is no update path; expiry is the
// TTL on the key.
type QuoteStore struct {
	client *redis.Client
}

func NewQuoteStore(client *redis.Client) *QuoteStore {
	return &QuoteStore{client: client}
}

func quoteKey(quoteNumber string) string {
	return "quote:" + quoteNumber
}

// Save stores the quote until its validity window closes.
func (s *QuoteStore) Save(ctx context.Context, quote *models.Quote) error {
	body, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	ttl := time.Until(time.Unix(quote.ValidUntil, 0))
	if ttl <= 0 {
		return fmt.Errorf("quote validity window already closed")
	}

	if err := s.client.Set(ctx, quoteKey(quote.QuoteNumber), body, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store quote: %w", err)
	}

	return nil
}

// Get fetches a quote by number. Expired or unknown quotes are not found.
func (s *QuoteStore) Get(ctx context.Context, quoteNumber string) (*models.Quote, error) {
	body, err := s.client.Get(ctx, quoteKey(quoteNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("quote not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}

	var quote models.Quote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", err)
	}

	return &quote, nil
}
