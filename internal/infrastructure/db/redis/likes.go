package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// LikeCounter keeps per-block like counts in Redis.
// Key format: block:likes:<block_id>
type LikeCounter struct {
	client *redis.Client
}

// NewLikeCounter creates a LikeCounter wrapping the given Redis client.
func NewLikeCounter(client *redis.Client) *LikeCounter {
	return &LikeCounter{client: client}
}

// Increment adds one like to the block and returns the new count.
func (l *LikeCounter) Increment(ctx context.Context, blockID string) (int64, error) {
	n, err := l.client.Incr(ctx, l.key(blockID)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment likes: %w", err)
	}
	return n, nil
}

// Get returns the current like count for a block (zero when never liked).
func (l *LikeCounter) Get(ctx context.Context, blockID string) (int64, error) {
	n, err := l.client.Get(ctx, l.key(blockID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get likes: %w", err)
	}
	return n, nil
}

// GetMany returns like counts for a set of blocks in a single round trip.
func (l *LikeCounter) GetMany(ctx context.Context, blockIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(blockIDs))
	if len(blockIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(blockIDs))
	for i, id := range blockIDs {
		keys[i] = l.key(id)
	}

	values, err := l.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget likes: %w", err)
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		var n int64
		if _, err := fmt.Sscan(v.(string), &n); err == nil {
			counts[blockIDs[i]] = n
		}
	}
	return counts, nil
}

func (l *LikeCounter) key(blockID string) string {
	return "block:likes:" + blockID
}
