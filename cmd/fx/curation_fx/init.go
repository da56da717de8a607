package curation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vivuconnect/internal/repositories"
	"vivuconnect/internal/services"
)

var Module = fx.Provide(
	provideCurationRepo, services.NewCurationService)

func provideCurationRepo(db *gorm.DB) repositories.CurationRepository {
	return repositories.NewCurationRepository(db)
}
