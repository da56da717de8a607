package poisfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vivuconnect/internal/repositories"
	"vivuconnect/internal/services"
	mem "vivuconnect/pkg/memcache"
)

var Module = fx.Provide(
	provideCatalogRepo, providePinLookup)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func providePinLookup(catalogRepo repositories.CatalogRepository, cache mem.SnapshotCache) services.PinLookup {
	return services.NewCatalogPinLookup(catalogRepo, cache)
}
