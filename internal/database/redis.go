package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var redisClient *redis.Client

// InitRedis initializes the Redis connection used for the token denylist
func InitRedis(url string) error {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	redisClient = client
	return nil
}

// GetRedis returns the Redis client. May be nil when Redis is not configured;
// callers degrade gracefully in that case.
func GetRedis() *redis.Client {
	return redisClient
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Close()
}
