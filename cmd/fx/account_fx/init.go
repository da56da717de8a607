package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vivuconnect/internal/repositories"
	"vivuconnect/internal/services"
	mem "vivuconnect/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideUserLookup)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideUserLookup(accountRepo repositories.AccountRepository, cache mem.SnapshotCache) services.UserLookup {
	return services.NewAccountUserLookup(accountRepo, cache)
}
