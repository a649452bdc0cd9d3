package auth

import (
	"context"
	"time"

	"github.com/zha7nea/callcenter/pkg/redis"
)

const denylistKeyPrefix = "token:revoked:"

// RedisDenylist remembers revoked token ids until the tokens would have
// expired on their own.
type RedisDenylist struct {
	redis redis.RedisAdapter
}

func NewRedisDenylist(adapter redis.RedisAdapter) *RedisDenylist {
	return &RedisDenylist{redis: adapter}
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.redis.Set(ctx, denylistKeyPrefix+tokenID, []byte("1"), ttl)
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return d.redis.Exist(ctx, denylistKeyPrefix+tokenID)
}
