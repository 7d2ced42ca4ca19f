package config

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

// InitRedis connects the cache client. REDIS_URL takes a full connection URL
// (Upstash style); otherwise REDIS_ADDR/REDIS_PASSWORD are used.
func InitRedis() {
	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		Redis = redis.NewClient(opt)
	} else {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		Redis = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	}

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		// cache is optional; services fall through to the DB when it is down
		log.Printf("redis unreachable: %v", err)
	}
}
