package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	planRepo repositories.PlanRepository,
	taskRepo repositories.TaskRepository,
	earnings services.EarningsServiceInterface) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, planRepo, taskRepo, earnings)
}
