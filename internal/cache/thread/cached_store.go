package thread

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	threadrepo "architect/internal/gateway/repository/thread"
)

type CacheConfig struct {
	MaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{MaxEntries: 1024}
}

// CachedStore is a read-through decorator over a thread store origin.
// Append invalidates the cached history so a later Load always reflects
// turns written by this process; it never serves a thread from cache that
// the origin has not acknowledged.
type CachedStore struct {
	origin threadrepo.Store
	cache  *lru.Cache[string, []threadrepo.Turn]
}

func NewCachedStore(origin threadrepo.Store, cfg CacheConfig) *CachedStore {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultCacheConfig().MaxEntries
	}
	cache, err := lru.New[string, []threadrepo.Turn](cfg.MaxEntries)
	if err != nil {
		// lru.New only fails on a non-positive size, which is guarded above.
		panic(err)
	}
	return &CachedStore{origin: origin, cache: cache}
}

func (s *CachedStore) Append(ctx context.Context, threadID string, turn threadrepo.Turn) error {
	if err := s.origin.Append(ctx, threadID, turn); err != nil {
		return err
	}
	s.cache.Remove(threadID)
	return nil
}

func (s *CachedStore) Load(ctx context.Context, threadID string) ([]threadrepo.Turn, error) {
	if turns, ok := s.cache.Get(threadID); ok {
		out := make([]threadrepo.Turn, len(turns))
		copy(out, turns)
		return out, nil
	}
	turns, err := s.origin.Load(ctx, threadID)
	if err != nil {
		return nil, err
	}
	s.cache.Add(threadID, turns)
	out := make([]threadrepo.Turn, len(turns))
	copy(out, turns)
	return out, nil
}
