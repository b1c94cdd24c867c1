package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Subscriber counts move slowly; a short TTL keeps Data API quota usage down
// without serving stale grades for long.
const SubscriberCacheTTL = 15 * time.Minute

// CacheService provides a Redis cache-aside layer for channel subscriber
// counts.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
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

// GetSubscribers retrieves a cached subscriber count. The second return
// value is false on a miss or when the cache is disabled.
func (c *CacheService) GetSubscribers(ctx context.Context, channelID string) (int64, bool, error) {
	if c.rdb == nil {
		return 0, false, nil
	}
	val, err := c.rdb.Get(ctx, subscriberKey(channelID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// SetSubscribers stores a subscriber count.
func (c *CacheService) SetSubscribers(ctx context.Context, channelID string, count int64) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, subscriberKey(channelID), strconv.FormatInt(count, 10), SubscriberCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func subscriberKey(channelID string) string {
	return fmt.Sprintf("channel:subs:%s", channelID)
}
