package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"statement-insights-backend/internal/pipeline"
)

var redisClient *redis.Client

const resultKeyPrefix = "statement:result:"

// initRedis initializes the Redis connection
func initRedis(redisURL string) error {
	if !strings.Contains(redisURL, "://") {
		redisURL = "redis://" + redisURL
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// Fallback to simple connection
		opt = &redis.Options{
			Addr: strings.TrimPrefix(redisURL, "redis://"),
		}
	}

	redisClient = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	return nil
}

// cachedResult returns the stored bundle for a document digest.
func cachedResult(ctx context.Context, digest string) (*pipeline.Result, bool) {
	if redisClient == nil {
		return nil, false
	}
	cached, err := redisClient.Get(ctx, resultKeyPrefix+digest).Result()
	if err != nil {
		return nil, false
	}
	var result pipeline.Result
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func cacheResult(ctx context.Context, digest string, result *pipeline.Result) {
	if redisClient == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := redisClient.SetEx(ctx, resultKeyPrefix+digest, data, cfg.CacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to cache parse result")
	}
}
