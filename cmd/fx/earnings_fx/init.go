package earnings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
)

var Module = fx.Provide(
	provideEarningsRepo, provideEarningsService)

func provideEarningsRepo(db *gorm.DB) repositories.EarningsRepository {
	return repositories.NewEarningsRepository(db)
}

func provideEarningsService(earningsRepo repositories.EarningsRepository) services.EarningsServiceInterface {
	return services.NewEarningsService(earningsRepo)
}
