package venue_fx

import (
	"go.uber.org/fx"

	"vivuconnect/internal/services"
)

var Module = fx.Provide(services.NewVenueService)
