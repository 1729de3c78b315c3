// Package sortedstorage backs the run leaderboard with a Redis sorted
// set. Lower scores rank higher, so the board favors runs that reached
// the goal in the fewest steps.
package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/maze-explorer-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLeaderboard keeps per-board sorted sets in Redis, trimmed to a
// maximum number of entries.
type RedisLeaderboard struct {
	client     *redis.Client
	locker     *redsync.Redsync
	maxEntries int64
	ttl        time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client.
// Boards are capped at maxEntries rows and expire after ttlSeconds without writes.
func NewRedisLeaderboard(client *redis.Client, maxEntries int64, ttlSeconds int) (i.Leaderboard, error) {
	board := &RedisLeaderboard{
		client:     client,
		maxEntries: maxEntries,
		ttl:        time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Record adds a member with the given score and trims the board back to
// its cap. The trim runs under a distributed lock so concurrent writers
// do not race on which rows survive.
func (rl *RedisLeaderboard) Record(ctx context.Context, board string, score float64, member string) error {
	_, err := rl.client.ZAdd(ctx, board, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Refresh expiration on every write
	_ = rl.client.Expire(ctx, board, rl.ttl).Err()

	if rl.client.ZCard(ctx, board).Val() <= rl.maxEntries {
		return nil
	}

	mutex := rl.locker.NewMutex(board + ":trim_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	return rl.client.ZRemRangeByRank(ctx, board, rl.maxEntries, -1).Err()
}

// Tops retrieves up to amount members with the lowest scores.
func (rl *RedisLeaderboard) Tops(ctx context.Context, board string, amount int64) ([]i.RankedEntry, error) {
	rows, err := rl.client.ZRangeWithScores(ctx, board, 0, amount-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.RankedEntry, 0, len(rows))
	for _, row := range rows {
		if member, ok := row.Member.(string); ok {
			entries = append(entries, i.RankedEntry{Member: member, Score: row.Score})
		}
	}
	return entries, nil
}
