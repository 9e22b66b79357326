package templatestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	data    map[string][]byte
	ttl     map[string]time.Duration
	readErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.readErr != nil {
		return redis.NewStringResult("", f.readErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = append([]byte(nil), value.([]byte)...)
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type countingStore struct {
	*MemoryStore
	gets int
}

func (c *countingStore) Get(ctx context.Context, id string) (Record, error) {
	c.gets++
	return c.MemoryStore.Get(ctx, id)
}

func TestCachedStoreReadThrough(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{MemoryStore: NewMemoryStore(Record{ID: "a", Name: "A", UsageCount: 1})}
	client := newFakeRedis()
	store := NewCachedStore(backing, client, 0, nil)

	for i := 0; i < 3; i++ {
		got, err := store.Get(ctx, "a")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != "A" {
			t.Fatalf("name = %q", got.Name)
		}
	}
	if backing.gets != 1 {
		t.Fatalf("backing reads = %d, want 1", backing.gets)
	}
	if client.ttl[cacheKey("a")] != DefaultCacheTTL {
		t.Fatalf("ttl = %v", client.ttl[cacheKey("a")])
	}

	if err := store.IncrementUsage(ctx, "a"); err != nil {
		t.Fatalf("IncrementUsage: %v", err)
	}
	if _, cached := client.data[cacheKey("a")]; cached {
		t.Fatal("write should evict the cached row")
	}
	got, err := store.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get after evict: %v", err)
	}
	if got.UsageCount != 2 || backing.gets != 2 {
		t.Fatalf("usage=%d backing reads=%d", got.UsageCount, backing.gets)
	}
}

func TestCachedStoreFallsBackWhenRedisFails(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{MemoryStore: NewMemoryStore(Record{ID: "a", Name: "A"})}
	client := newFakeRedis()
	client.readErr = errors.New("dial tcp: connection refused")
	store := NewCachedStore(backing, client, time.Minute, nil)

	got, err := store.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "A" || backing.gets != 1 {
		t.Fatalf("got=%+v backing reads=%d", got, backing.gets)
	}
}

func TestCachedStoreDoesNotCacheMisses(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewCachedStore(NewMemoryStore(), client, time.Minute, nil)

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if len(client.data) != 0 {
		t.Fatalf("cache = %v", client.data)
	}
}

func TestCachedStoreDeleteEvicts(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewCachedStore(NewMemoryStore(Record{ID: "a"}), client, time.Minute, nil)

	if _, err := store.Get(ctx, "a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted row served from cache: %v", err)
	}
}
