package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-exchanger/internal/logger"
)

// RateCacheRepository memoizes resolved rates in Redis. Entries are keyed by
// the fingerprint of the exact rate sheet plus the currency pair, so a
// changed sheet can never serve a stale result, and expire after the
// configured TTL.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRateCacheRepository creates a cache repository with the given entry TTL.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func cacheKey(fingerprint, from, to string) string {
	return fmt.Sprintf("resolved_rate:%s:%s:%s", fingerprint, from, to)
}

// GetResolvedRate returns a cached rate for the pair under the given sheet
// fingerprint. A miss is an error (redis.Nil wrapped with context).
func (r *RateCacheRepository) GetResolvedRate(ctx context.Context, fingerprint, from, to string) (float64, error) {
	key := cacheKey(fingerprint, from, to)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("resolved rate not cached for %s->%s", from, to)
		}
		logger.Log.Errorw("rate cache get failed", "key", key, "error", err)
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Errorw("rate cache holds unparsable value", "key", key, "value", val, "error", err)
		return 0, err
	}

	return rate, nil
}

// SetResolvedRate caches a resolved rate with the repository TTL.
func (r *RateCacheRepository) SetResolvedRate(ctx context.Context, fingerprint, from, to string, rate float64) error {
	key := cacheKey(fingerprint, from, to)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow("rate cache set",
		"key", key,
		"rate", rate,
		"error", err,
	)

	return err
}
