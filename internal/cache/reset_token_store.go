// Package cache provides caching functionality using Redis.
package cache

import (
	"context"
	"fmt"
	"time"
)

// ResetTokenData is the payload stored for a pending password reset.
type ResetTokenData struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ResetTokenStore manages single-use password reset tokens. Tokens are stored
// under their hash, never in the clear, and expire via Redis TTL.
type ResetTokenStore interface {
	// Create stores a pending reset keyed by the token hash.
	Create(ctx context.Context, tokenHash string, data *ResetTokenData, ttl time.Duration) error
	// Get retrieves the pending reset for a token hash, nil if absent or expired.
	Get(ctx context.Context, tokenHash string) (*ResetTokenData, error)
	// Consume removes the pending reset so the token cannot be used twice.
	Consume(ctx context.Context, tokenHash string) error
}

type resetTokenStore struct {
	cache Cache
}

// NewResetTokenStore creates a new ResetTokenStore backed by the given cache.
func NewResetTokenStore(cache Cache) ResetTokenStore {
	return &resetTokenStore{cache: cache}
}

// resetTokenKey generates a cache key for a reset token hash.
func resetTokenKey(tokenHash string) string {
	return fmt.Sprintf("reset_token:%s", tokenHash)
}

// Create stores a pending reset keyed by the token hash.
func (s *resetTokenStore) Create(ctx context.Context, tokenHash string, data *ResetTokenData, ttl time.Duration) error {
	return s.cache.Set(ctx, resetTokenKey(tokenHash), data, ttl)
}

// Get retrieves the pending reset for a token hash.
func (s *resetTokenStore) Get(ctx context.Context, tokenHash string) (*ResetTokenData, error) {
	var data ResetTokenData
	found, err := s.cache.Get(ctx, resetTokenKey(tokenHash), &data)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &data, nil
}

// Consume removes the pending reset.
func (s *resetTokenStore) Consume(ctx context.Context, tokenHash string) error {
	return s.cache.Delete(ctx, resetTokenKey(tokenHash))
}
