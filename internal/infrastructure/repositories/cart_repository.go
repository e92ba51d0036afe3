package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// CartRepositoryImpl implements domain.CartRepository using a Redis list
// per session. Lines are appended in add order and duplicate adds produce
// duplicate entries.
type CartRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCartRepository creates a new cart repository. The TTL should match the
// session TTL so orphaned carts expire with their session.
func NewCartRepository(client *redis.Client, ttl time.Duration) domain.CartRepository {
	return &CartRepositoryImpl{
		client: client,
		prefix: "cart:",
		ttl:    ttl,
	}
}

// Append implements domain.CartRepository
func (r *CartRepositoryImpl) Append(ctx context.Context, sessionID string, line domain.CartLine) error {
	key := r.prefix + sessionID
	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to marshal cart line: %w", err)
	}

	if err := r.client.RPush(ctx, key, data).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, key, r.ttl).Err()
}

// Lines implements domain.CartRepository
func (r *CartRepositoryImpl) Lines(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	key := r.prefix + sessionID
	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(raw))
	for _, item := range raw {
		var line domain.CartLine
		if err := json.Unmarshal([]byte(item), &line); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Clear implements domain.CartRepository
func (r *CartRepositoryImpl) Clear(ctx context.Context, sessionID string) error {
	key := r.prefix + sessionID
	return r.client.Del(ctx, key).Err()
}
