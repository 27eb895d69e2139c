package withdrawal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
)

var Module = fx.Provide(
	provideWithdrawalRepo, provideWithdrawalService)

func provideWithdrawalRepo(db *gorm.DB) repositories.WithdrawalRepository {
	return repositories.NewWithdrawalRepository(db)
}

func provideWithdrawalService(
	withdrawalRepo repositories.WithdrawalRepository,
	earnings services.EarningsServiceInterface) services.WithdrawalServiceInterface {
	return services.NewWithdrawalService(withdrawalRepo, earnings)
}
