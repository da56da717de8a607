package sweeper_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"vivuconnect/internal/config"
	"vivuconnect/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideSweeper),
	fx.Invoke(registerSweeper),
)

func provideSweeper(checkIns services.CheckInServiceInterface, cfg *config.Config, logger *zap.Logger) *services.SweeperService {
	return services.NewSweeperService(checkIns, cfg.Sweep, logger)
}

func registerSweeper(lc fx.Lifecycle, sweeper *services.SweeperService) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
