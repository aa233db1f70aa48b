// Package searchcache caches upstream search results in a key-value store.
package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/domain"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
	"github.com/vivaha-cloud/vendex/internal/usecase/discovery"
)

var cacheKeyPrefix = domain.KeyPrefix + "search_cache:"

// store is the consumer interface for the search cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedProvider is a caching decorator around a search provider.
type CachedProvider struct {
	inner      discovery.SearchProvider
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner discovery.SearchProvider,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedProvider {
	return &CachedProvider{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Search returns cached candidates or calls the inner provider.
// Cache read/write failures degrade to a plain provider call.
func (c *CachedProvider) Search(ctx context.Context, query string) ([]vendor.Candidate, error) {
	key := c.cacheKey(query)

	if candidates, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return candidates, nil
	}

	c.incCache("miss")

	candidates, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search upstream: %w", err)
	}

	c.putToCache(ctx, key, candidates)
	return candidates, nil
}

func (c *CachedProvider) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the normalized query so the key length stays fixed.
func (c *CachedProvider) cacheKey(query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	h := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedProvider) getFromCache(ctx context.Context, key string) ([]vendor.Candidate, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var candidates []vendor.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		c.logger.Warn("corrupt search cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return candidates, true
}

func (c *CachedProvider) putToCache(ctx context.Context, key string, candidates []vendor.Candidate) {
	data, err := json.Marshal(candidates)
	if err != nil {
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("search cache write failed", zap.String("key", key), zap.Error(err))
	}
}
