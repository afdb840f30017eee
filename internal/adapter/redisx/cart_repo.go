// Package redisx implements the cart repository on Redis. Each cart lives
// under one key holding the JSON-encoded item list, expiring after the
// cart TTL so abandoned guest carts age out on their own.
package redisx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

const (
	// KeyCart is the cart key pattern: cart:{session_id} -> JSON items.
	KeyCart = "cart:%s"
)

// TTLCart is how long an untouched cart survives.
var TTLCart = 30 * 24 * time.Hour

// New creates a Redis client for the given address.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// CartRepo persists carts in Redis keyed by cart session id.
type CartRepo struct {
	rdb *redis.Client
}

// NewCartRepo wraps a Redis client as a CartRepository.
func NewCartRepo(rdb *redis.Client) *CartRepo {
	return &CartRepo{rdb: rdb}
}

var _ domain.CartRepository = (*CartRepo)(nil)

// GetCart loads the cart for the session. A missing key reads as an empty
// cart.
func (r *CartRepo) GetCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	raw, err := r.rdb.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return domain.CartState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart get: %w", err)
	}

	var state domain.CartState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	return state, nil
}

// SaveCart stores the cart and refreshes its TTL.
func (r *CartRepo) SaveCart(ctx context.Context, sessionID string, state domain.CartState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, cartKey(sessionID), b, TTLCart).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

// ClearCart drops the cart key.
func (r *CartRepo) ClearCart(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf(KeyCart, sessionID)
}
