package style

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const DefaultCacheTTL = time.Hour

// Cache stores rewritten texts by request hash.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// CacheKey hashes the normalized request; equal (text, type, config) triples
// share a key.
func CacheKey(req Request) string {
	payload, _ := json.Marshal(struct {
		Text   string `json:"t"`
		Type   Type   `json:"y"`
		Config Config `json:"c"`
	}{req.Text, req.Type, req.Config})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

type memoryCache struct {
	c *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) Cache {
	return &memoryCache{c: gocache.New(ttl, 10*time.Minute)}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	if v, found := m.c.Get(key); found {
		return v.(string), true, nil
	}
	return "", false, nil
}

func (m *memoryCache) Set(_ context.Context, key, value string) error {
	m.c.Set(key, value, gocache.DefaultExpiration)
	return nil
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "dissertai:style:"

func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (r *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *redisCache) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err()
}
