package lib

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// CacheJSON stores a JSON document under key with an optional TTL.
func CacheJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	rd := GetRedisClient()
	if rd == nil {
		return nil
	}
	if _, err := rd.JSONSet(ctx, key, "$", value).Result(); err != nil {
		return err
	}
	if ttl > 0 {
		return rd.Expire(ctx, key, ttl).Err()
	}
	return nil
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}
