// Package cache invalidates rendered dashboard views when the data behind
// them changes. Invalidation is fire-and-forget: failures are logged, never
// surfaced to the request that triggered them.
package cache

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/eduboard/backend/internal/logger"
)

type ViewInvalidator interface {
	Invalidate(ctx context.Context, paths ...string)
	Close() error
}

type redisInvalidator struct {
	log       *logger.Logger
	rdb       *goredis.Client
	keyPrefix string
}

func NewRedisInvalidator(log *logger.Logger) (ViewInvalidator, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(os.Getenv("REDIS_VIEW_PREFIX"))
	if prefix == "" {
		prefix = "view"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisInvalidator{
		log:       log.With("service", "RedisViewInvalidator"),
		rdb:       rdb,
		keyPrefix: prefix,
	}, nil
}

func (ri *redisInvalidator) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, ri.keyPrefix+":"+p)
	}
	if err := ri.rdb.Del(ctx, keys...).Err(); err != nil {
		ri.log.Warn("View invalidation failed", "error", err, "paths", paths)
	}
}

func (ri *redisInvalidator) Close() error {
	return ri.rdb.Close()
}

// NoopInvalidator is used when no Redis view cache is configured; every read
// then goes to the store directly and there is nothing to invalidate.
type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(ctx context.Context, paths ...string) {}
func (NoopInvalidator) Close() error                                   { return nil }
