package auth

import (
	"context"
	"time"

	"github.com/spec-kit/task-tracker/internal/persistence"
)

const revokedKeyPrefix = "revoked:"

// TokenRevoker remembers revoked token ids until their natural expiry.
// Logout and username changes revoke the presented token, forcing a fresh
// login.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisTokenRevoker struct {
	redis *persistence.Redis
}

// NewRedisTokenRevoker returns a Redis-backed revocation store.
func NewRedisTokenRevoker(redis *persistence.Redis) TokenRevoker {
	return &redisTokenRevoker{redis: redis}
}

func (r *redisTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// token already expired; nothing to remember
		return nil
	}
	return r.redis.Client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (r *redisTokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.redis.Client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
