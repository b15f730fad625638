package steal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"recipe-box/domain"
	"recipe-box/internal/utils"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ExtractionCache remembers validated payloads by source URL so repeated
// steals of the same page skip the fetch and the model call.
type ExtractionCache interface {
	Get(ctx context.Context, pageURL string) (domain.DigestRequest, bool)
	Set(ctx context.Context, pageURL string, payload domain.DigestRequest)
}

func cacheKey(pageURL string) string {
	sum := sha256.Sum256([]byte(pageURL))
	return "steal:" + hex.EncodeToString(sum[:])
}

// NewExtractionCache builds the cache named by CACHE_DRIVER: "redis", "memory"
// or "none".
func NewExtractionCache(ctx context.Context, cfg *utils.Config) (ExtractionCache, error) {
	ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	switch cfg.CacheDriver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.Wrap(err, "connect redis")
		}
		return NewRedisCache(client, ttl), nil
	case "memory", "":
		return NewMemoryCache(ttl), nil
	case "none":
		return noopCache{}, nil
	default:
		return nil, errors.Errorf("unknown CACHE_DRIVER %q", cfg.CacheDriver)
	}
}

type memoryCache struct {
	store *cache.Cache
}

func NewMemoryCache(ttl time.Duration) ExtractionCache {
	return &memoryCache{store: cache.New(ttl, 2*ttl)}
}

func (c *memoryCache) Get(_ context.Context, pageURL string) (domain.DigestRequest, bool) {
	x, found := c.store.Get(cacheKey(pageURL))
	if !found {
		return domain.DigestRequest{}, false
	}
	raw, ok := x.([]byte)
	if !ok {
		return domain.DigestRequest{}, false
	}

	// Entries are stored encoded so callers never share slices with the cache.
	var payload domain.DigestRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.DigestRequest{}, false
	}
	return payload, true
}

func (c *memoryCache) Set(_ context.Context, pageURL string, payload domain.DigestRequest) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.store.Set(cacheKey(pageURL), raw, cache.DefaultExpiration)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) ExtractionCache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, pageURL string) (domain.DigestRequest, bool) {
	raw, err := c.client.Get(ctx, cacheKey(pageURL)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.Logger.Warn("extraction cache read failed", zap.Error(err))
		}
		return domain.DigestRequest{}, false
	}

	var payload domain.DigestRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		utils.Logger.Warn("extraction cache entry unreadable", zap.Error(err))
		return domain.DigestRequest{}, false
	}
	return payload, true
}

func (c *redisCache) Set(ctx context.Context, pageURL string, payload domain.DigestRequest) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(pageURL), raw, c.ttl).Err(); err != nil {
		utils.Logger.Warn("extraction cache write failed", zap.Error(err))
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (domain.DigestRequest, bool) {
	return domain.DigestRequest{}, false
}

func (noopCache) Set(context.Context, string, domain.DigestRequest) {}
