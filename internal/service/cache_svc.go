package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CommentCacheTTL bounds how stale the cached first page of feedback
// comments may get; writes invalidate it anyway.
const CommentCacheTTL = 5 * time.Minute

// CacheService provides a Redis cache-aside layer. The search pipeline
// never touches it; it only serves read-heavy persistence lookups.
type CacheService struct {
	rdb *redis.Client

	// Metric hooks, wired at startup. Either may be nil.
	OnHit  func()
	OnMiss func()
}

// NewCacheService creates a new CacheService. If redisURL is empty or connection
// fails, it returns a CacheService with a nil client (cache operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetCommentPage retrieves a cached comment page. Returns nil if not cached
// or the cache is disabled.
func (c *CacheService) GetCommentPage(ctx context.Context, page, limit int) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, commentPageKey(page, limit)).Bytes()
	if err == redis.Nil {
		if c.OnMiss != nil {
			c.OnMiss()
		}
		return nil, nil
	}
	if err == nil && c.OnHit != nil {
		c.OnHit()
	}
	return data, err
}

// SetCommentPage stores a comment page in cache.
func (c *CacheService) SetCommentPage(ctx context.Context, page, limit int, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, commentPageKey(page, limit), b, CommentCacheTTL).Err()
}

// InvalidateComments removes all cached comment pages (called after any
// comment write).
func (c *CacheService) InvalidateComments(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, "comments:page:*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func commentPageKey(page, limit int) string {
	return fmt.Sprintf("comments:page:%d:%d", page, limit)
}
