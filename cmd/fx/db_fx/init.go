package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vivuconnect/internal/config"
	"vivuconnect/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.CloseDatabase(db, logger)
	}))
	return db, nil
}
