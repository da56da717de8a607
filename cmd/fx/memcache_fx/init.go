package memcache_fx

import (
	"go.uber.org/fx"

	"vivuconnect/internal/config"
	mem "vivuconnect/pkg/memcache"
)

var Module = fx.Provide(provideSnapshotCache)

func provideSnapshotCache(cfg *config.Config) mem.SnapshotCache {
	return mem.NewSnapshotCache(cfg.Lookup.CacheTTL)
}
