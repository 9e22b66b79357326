package templatestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultCacheTTL bounds how long a cached row may be served.
const DefaultCacheTTL = 5 * time.Minute

const cacheKeyPrefix = "deal:template:"

// cacheClient is the slice of the redis client the cache needs.
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedStore is a read-through cache in front of another RowStore.
// Single rows are cached by id; writes evict the cached copy. A redis
// outage degrades to direct reads and is only logged.
type CachedStore struct {
	next   RowStore
	client cacheClient
	ttl    time.Duration
	logger *zap.Logger
}

var _ RowStore = (*CachedStore)(nil)

// NewCachedStore wraps next. A non-positive ttl uses DefaultCacheTTL.
func NewCachedStore(next RowStore, client cacheClient, ttl time.Duration, logger *zap.Logger) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedStore{next: next, client: client, ttl: ttl, logger: logger}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func cacheKey(id string) string {
	return cacheKeyPrefix + id
}

// Get serves the cached row when present and fills the cache on a miss
func (s *CachedStore) Get(ctx context.Context, id string) (Record, error) {
	key := cacheKey(id)
	raw, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var r Record
		if jsonErr := json.Unmarshal(raw, &r); jsonErr == nil {
			return r, nil
		}
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		s.logger.Warn("template cache read failed", zap.String("key", key), zap.Error(err))
	}

	r, err := s.next.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	payload, err := json.Marshal(r)
	if err == nil {
		err = s.client.Set(ctx, key, payload, s.ttl).Err()
	}
	if err != nil {
		s.logger.Warn("template cache write failed", zap.String("key", key), zap.Error(err))
	}
	return r, nil
}

// Insert goes straight to the wrapped store
func (s *CachedStore) Insert(ctx context.Context, r Record) error {
	return s.next.Insert(ctx, r)
}

// List is never cached
func (s *CachedStore) List(ctx context.Context, f ListFilter) ([]Record, error) {
	return s.next.List(ctx, f)
}

// Update writes through and evicts the cached row
func (s *CachedStore) Update(ctx context.Context, r Record) error {
	if err := s.next.Update(ctx, r); err != nil {
		return err
	}
	s.evict(ctx, r.ID)
	return nil
}

// Delete writes through and evicts the cached row
func (s *CachedStore) Delete(ctx context.Context, id string) error {
	if err := s.next.Delete(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, id)
	return nil
}

// IncrementUsage writes through and evicts the cached row
func (s *CachedStore) IncrementUsage(ctx context.Context, id string) error {
	if err := s.next.IncrementUsage(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, id)
	return nil
}

func (s *CachedStore) evict(ctx context.Context, id string) {
	if err := s.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		s.logger.Warn("template cache eviction failed", zap.String("id", id), zap.Error(err))
	}
}
