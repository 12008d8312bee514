package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/platform/logger"
	"github.com/phrazzld/roadnet-api/internal/store"
)

const (
	// DefaultTTL is used when a non-positive TTL is configured.
	DefaultTTL = time.Hour

	keyPrefix          = "roadnet:"
	linkNodesKeyPrefix = keyPrefix + "link-nodes:"
)

// NewClient creates a Redis client for the server at address ("host:port").
func NewClient(address string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: address,
		// Use default DB.
		DB: 0,
	})
}

// CachedLinkStore wraps a store.LinkStore and caches LinksBetweenNodes
// results in Redis. Redis failures are logged and the wrapped store is used.
type CachedLinkStore struct {
	next   store.LinkStore
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Ensure CachedLinkStore implements store.LinkStore interface
var _ store.LinkStore = (*CachedLinkStore)(nil)

// NewCachedLinkStore creates a caching decorator around next.
func NewCachedLinkStore(
	next store.LinkStore,
	rdb *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedLinkStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedLinkStore{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "link_cache")),
	}
}

// LinksBetweenNodesKey returns the cache key for a node pair.
func LinksBetweenNodesKey(fromNodeID, toNodeID int64) string {
	return fmt.Sprintf("%s%d:%d", linkNodesKeyPrefix, fromNodeID, toNodeID)
}

// GetLink passes through to the wrapped store.
func (c *CachedLinkStore) GetLink(ctx context.Context, linkDir string) (domain.LinkRow, error) {
	return c.next.GetLink(ctx, linkDir)
}

// LinksBetweenNodes returns the cached record text when present, otherwise
// reads it from the wrapped store and caches it. Empty results are not cached.
func (c *CachedLinkStore) LinksBetweenNodes(
	ctx context.Context,
	fromNodeID, toNodeID int64,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)
	key := LinksBetweenNodesKey(fromNodeID, toNodeID)

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		log.Debug("link-nodes cache hit", slog.String("key", key))
		return cached, nil
	case err == redis.Nil:
		log.Debug("link-nodes cache miss", slog.String("key", key))
	default:
		log.Warn("failed to read link-nodes cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	text, err := c.next.LinksBetweenNodes(ctx, fromNodeID, toNodeID)
	if err != nil {
		return "", err
	}
	if text == "" {
		return text, nil
	}

	if err := c.rdb.Set(ctx, key, text, c.ttl).Err(); err != nil {
		log.Warn("failed to write link-nodes cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return text, nil
}
