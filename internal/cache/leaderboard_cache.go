package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"framequiz/internal/model"
)

const leaderboardKey = "leaderboard:top"

// LeaderboardCache keeps the computed leaderboard in Redis so repeated reads
// don't hit Mongo. Entries are invalidated whenever a session is finalized.
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	Set(ctx context.Context, entries []model.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

type leaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client, ttl time.Duration) LeaderboardCache {
	return &leaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns up to limit cached entries, or nil on a cache miss.
func (c *leaderboardCache) Get(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	data, err := c.client.Get(ctx, leaderboardKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (c *leaderboardCache) Set(ctx context.Context, entries []model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey, data, c.ttl).Err()
}

func (c *leaderboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}
