// Package session implements server-side revocation for session tokens.
// Tokens are stateless, so revocation is a denylist keyed by token ID with a
// TTL matching the token's remaining lifetime; expired entries vanish on
// their own.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DenylistRedis stores revoked token IDs in Redis.
type DenylistRedis struct {
	client *redis.Client
	prefix string
}

// NewDenylistRedis creates a DenylistRedis. An empty prefix defaults to
// "revoked".
func NewDenylistRedis(client *redis.Client, prefix string) *DenylistRedis {
	if prefix == "" {
		prefix = "revoked"
	}
	return &DenylistRedis{client: client, prefix: prefix}
}

// key returns the Redis key for a token ID.
func (d *DenylistRedis) key(tokenID string) string {
	return fmt.Sprintf("%s:%s", d.prefix, tokenID)
}

// Revoke marks a token ID as revoked until the token's natural expiry.
// Revoking an already-expired token is a no-op.
func (d *DenylistRedis) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, d.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether a token ID is on the denylist.
func (d *DenylistRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if err := d.client.Get(ctx, d.key(tokenID)).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
