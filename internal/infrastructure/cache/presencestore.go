package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/assetdesk/assetdesk/internal/shared/config"
)

const presenceKeyPrefix = "presence:user:"

// RedisPresenceStore tracks which users are online. Each heartbeat refreshes
// a per-user key with a TTL; a missing or expired key means offline.
type RedisPresenceStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPresenceStore(client *redis.Client, cfg *config.PresenceConfig) *RedisPresenceStore {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisPresenceStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisPresenceStore) Heartbeat(ctx context.Context, userID uint) error {
	key := s.buildKey(userID)
	if err := s.client.Set(ctx, key, time.Now().UTC().Unix(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to record presence heartbeat: %w", err)
	}
	return nil
}

func (s *RedisPresenceStore) IsOnline(ctx context.Context, userID uint) (bool, error) {
	key := s.buildKey(userID)
	if err := s.client.Get(ctx, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check presence: %w", err)
	}
	return true, nil
}

// ListOnline scans the presence keyspace and returns the user IDs with a
// live heartbeat key.
func (s *RedisPresenceStore) ListOnline(ctx context.Context) ([]uint, error) {
	var userIDs []uint

	iter := s.client.Scan(ctx, 0, presenceKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		idStr := strings.TrimPrefix(iter.Val(), presenceKeyPrefix)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			continue
		}
		userIDs = append(userIDs, uint(id))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan presence keys: %w", err)
	}

	return userIDs, nil
}

func (s *RedisPresenceStore) buildKey(userID uint) string {
	return fmt.Sprintf("%s%d", presenceKeyPrefix, userID)
}
