package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/mwhitfield/wedding-website-backend/config"
)

// RateLimiter returns a Gin middleware that limits requests per IP.
// Uses the redis store when REDIS_ADDR is configured so limits hold across
// instances; otherwise falls back to the in-memory store.
func RateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  100,
	}

	store := newStore(cfg)

	// 🚦 Gin-compatible middleware
	return ginlimiter.NewMiddleware(limiter.New(store, rate))
}

func newStore(cfg *config.Config) limiter.Store {
	if cfg.RedisAddr == "" {
		return memory.NewStore()
	}

	client := libredis.NewClient(&libredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "wedding_ratelimit",
	})
	if err != nil {
		log.Printf("⚠️ Redis rate-limit store unavailable, using memory store: %v", err)
		return memory.NewStore()
	}
	return store
}
