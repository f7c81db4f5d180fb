// Package cache holds the Redis-backed read cache and the key scheme shared
// by every component that touches Redis: cached users and questions, and the
// revoked-token blacklist. The client is optional; every helper degrades to
// a no-op when Redis is absent so reads fall through to the database.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"guesswho/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Key scheme. Users churn faster than questions (profile edits invalidate
// them anyway), so their entries expire sooner; a question's option pool
// only changes when a custom answer lands, which invalidates explicitly.
const (
	userKeyPrefix      = "user:%d"
	questionKeyPrefix  = "question:%d"
	blacklistKeyPrefix = "blacklist:%s"

	UserTTL     = 5 * time.Minute
	QuestionTTL = 30 * time.Minute
)

// UserKey is the cache key for a user profile.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// QuestionKey is the cache key for a question with its option pool.
func QuestionKey(questionID uint) string {
	return fmt.Sprintf(questionKeyPrefix, questionID)
}

// BlacklistKey is the key marking a revoked token id. Logout and refresh
// write it; the auth middleware checks it on every protected request.
func BlacklistKey(jti string) string {
	return fmt.Sprintf(blacklistKeyPrefix, jti)
}

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// clientOptions accepts either a bare host:port or a redis:// URL.
func clientOptions(addr string) (*redis.Options, error) {
	if strings.Contains(addr, "://") {
		return redis.ParseURL(addr)
	}
	return &redis.Options{Addr: addr}, nil
}

// InitRedis connects the package-level client. On any failure the client
// stays nil and the app runs uncached rather than refusing to start.
func InitRedis(addr string) {
	opts, err := clientOptions(addr)
	if err != nil {
		log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without cache)", addr, err)
		client = nil
		return
	}

	c := redis.NewClient(opts)
	c.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
		return
	}

	client = c
	log.Println("Redis connected successfully")
}

// GetClient returns the current Redis client instance, nil when uncached.
func GetClient() *redis.Client {
	return client
}
