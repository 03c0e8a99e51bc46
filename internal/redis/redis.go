package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// SetJSON caches a JSON-encoded value. Cache failures are logged and
// otherwise ignored; the cache is best effort.
func SetJSON(ctx context.Context, key string, value any, expiration time.Duration) {
	if Rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")
		return
	}
	if err := Rdb.Set(ctx, key, payload, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to add key to redis")
	}
}

// GetJSON loads a cached value into dest. Any failure, including a
// stale-format entry, is reported as a miss.
func GetJSON(ctx context.Context, key string, dest any) bool {
	if Rdb == nil {
		return false
	}
	payload, err := Rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key).Msg("failed to read key from redis")
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cache value")
		return false
	}
	return true
}
