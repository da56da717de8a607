package join_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vivuconnect/internal/repositories"
	"vivuconnect/internal/services"
)

var Module = fx.Provide(
	provideJoinRepo, services.NewJoinService)

func provideJoinRepo(db *gorm.DB) repositories.JoinRepository {
	return repositories.NewJoinRepository(db)
}
