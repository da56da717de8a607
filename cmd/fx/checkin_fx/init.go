package checkin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vivuconnect/internal/repositories"
	"vivuconnect/internal/services"
)

var Module = fx.Provide(
	provideCheckInRepo, services.NewCheckInService)

func provideCheckInRepo(db *gorm.DB) repositories.CheckInRepository {
	return repositories.NewCheckInRepository(db)
}
