package controllers_fx

import (
	"go.uber.org/fx"

	"vivuconnect/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewConnectController),
	fx.Provide(controllers.NewCurationController),
	fx.Provide(controllers.NewHealthController))
