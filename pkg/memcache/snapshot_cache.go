package mem

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SnapshotCache memoises lookup snapshots by key for a fixed TTL.
type SnapshotCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

type snapshotCache struct {
	store *cache.Cache
}

// NewSnapshotCache returns a cache whose entries live for ttl. A non-positive
// ttl disables caching.
func NewSnapshotCache(ttl time.Duration) SnapshotCache {
	if ttl <= 0 {
		return noopCache{}
	}
	return &snapshotCache{store: cache.New(ttl, 2*ttl)}
}

func (s *snapshotCache) Get(key string) (any, bool) {
	return s.store.Get(key)
}

func (s *snapshotCache) Set(key string, value any) {
	s.store.SetDefault(key, value)
}

type noopCache struct{}

func (noopCache) Get(string) (any, bool) { return nil, false }
func (noopCache) Set(string, any)        {}
