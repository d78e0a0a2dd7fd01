package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
)

const onlineKeyPrefix = "online:"

type redisTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTracker returns a Tracker backed by Redis, letting several server
// instances share one presence view. The connection is verified with a ping
// before first use.
func NewRedisTracker(ctx context.Context, cfg config.ServerPresence) (Tracker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &redisTracker{client: client, ttl: cfg.TTL}, nil
}

func (t *redisTracker) MarkOnline(ctx context.Context, userID string) error {
	if err := t.client.Set(ctx, onlineKeyPrefix+userID, "1", t.ttl).Err(); err != nil {
		return fmt.Errorf("mark online: %w", err)
	}
	return nil
}

func (t *redisTracker) IsOnline(ctx context.Context, userID string) (bool, error) {
	count, err := t.client.Exists(ctx, onlineKeyPrefix+userID).Result()
	if err != nil {
		return false, fmt.Errorf("check online: %w", err)
	}
	return count > 0, nil
}

func (t *redisTracker) MarkOffline(ctx context.Context, userID string) error {
	if err := t.client.Del(ctx, onlineKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("mark offline: %w", err)
	}
	return nil
}
