package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vivuconnect/internal/repositories"
	"vivuconnect/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, services.NewActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}
