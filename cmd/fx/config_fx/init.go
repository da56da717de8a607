package config_fx

import (
	"go.uber.org/fx"

	"vivuconnect/internal/config"
	"vivuconnect/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideDatabaseConfig,
	provideClock,
)

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideClock() utils.Clock {
	return utils.SystemClock{}
}
