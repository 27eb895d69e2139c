package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.PlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}
