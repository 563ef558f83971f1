package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis connects the shared Redis client. Redis backs the form cache and
// the asynq queue; both degrade gracefully when it is absent, so a failed
// connection only logs a warning (dev mode without Redis).
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("REDIS_URI not set. Form cache and follow-up jobs disabled.")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := client.Ping(RedisCtx).Result(); err != nil {
		log.Println("failed to connect Redis:", err)
		return
	}

	RedisClient = client
	log.Println("Redis connected successfully")
}
