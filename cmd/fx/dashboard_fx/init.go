package dashboard_fx

import (
	"go.uber.org/fx"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	earningsRepo repositories.EarningsRepository,
	withdrawalRepo repositories.WithdrawalRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(userRepo, subRepo, earningsRepo, withdrawalRepo)
}
