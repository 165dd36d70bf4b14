package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:"

type RedisTokenRepo struct {
	client *redis.Client
}

func NewRedisTokenRepo(client *redis.Client) *RedisTokenRepo {
	return &RedisTokenRepo{
		client: client,
	}
}

// RevokeOnce is SETNX with expiry: the whole check-then-mark collapses
// into one conditional write, so two concurrent refreshes of the same
// token cannot both win.
func (r *RedisTokenRepo) RevokeOnce(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	set, err := r.client.SetNX(ctx, keyPrefix+jti, 1, safeTTL(ttl)).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}

func (r *RedisTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return true, err // считаем отозванным, плюс ошибка вверх
	}
	return n > 0, nil
}

func safeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		// задаём минимальный TTL, чтобы ключ всё-таки исчез
		return time.Minute
	}
	return ttl
}
