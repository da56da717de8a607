package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"vivuconnect/cmd/fx/account_fx"
	"vivuconnect/cmd/fx/activity_fx"
	"vivuconnect/cmd/fx/auth_fx"
	"vivuconnect/cmd/fx/checkin_fx"
	"vivuconnect/cmd/fx/config_fx"
	"vivuconnect/cmd/fx/controllers_fx"
	"vivuconnect/cmd/fx/curation_fx"
	"vivuconnect/cmd/fx/db_fx"
	"vivuconnect/cmd/fx/join_fx"
	"vivuconnect/cmd/fx/logger_fx"
	"vivuconnect/cmd/fx/memcache_fx"
	poisfx "vivuconnect/cmd/fx/pois_fx"
	"vivuconnect/cmd/fx/sweeper_fx"
	"vivuconnect/cmd/fx/venue_fx"
	"vivuconnect/internal/api"
	"vivuconnect/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		poisfx.Module,
		account_fx.Module,
		activity_fx.Module,
		checkin_fx.Module,
		join_fx.Module,
		venue_fx.Module,
		curation_fx.Module,
		sweeper_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
