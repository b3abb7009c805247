// Package bootstrap wires configuration, storage and seeding into a ready
// runtime for the service binaries.
package bootstrap

import (
	"fmt"

	"gotolinks/internal/cache"
	"gotolinks/internal/config"
	"gotolinks/internal/database"
	"gotolinks/internal/middleware"
	"gotolinks/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemo inserts the demo creator when it is not present yet.
	SeedDemo bool
}

// InitRuntime connects to DB and Redis and optionally seeds the demo creator.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	// Connect DB
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	middleware.InitMiddleware(cfg)

	if opts.SeedDemo {
		if err := seed.SeedDemo(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo creator: %w", err)
		}
	}

	return db, r, nil
}
