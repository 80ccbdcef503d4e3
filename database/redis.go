package database

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/blogify-backend/config"
)

var Redis *redis.Client

// InitializeRedis connects the client used for the logout token blacklist.
// Redis being down is tolerated: auth still works, revoked tokens just stay
// valid until they expire.
func InitializeRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable, token revocation disabled: %v", err)
		return
	}
	log.Println("✅ Connected to Redis")
}
