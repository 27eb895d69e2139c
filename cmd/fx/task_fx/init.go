package task_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"earnhub/internal/repositories"
	"earnhub/internal/services"
)

var Module = fx.Provide(
	provideTaskRepo, provideTaskProgressRepo, provideTaskService)

func provideTaskRepo(db *gorm.DB) repositories.TaskRepository {
	return repositories.NewTaskRepository(db)
}

func provideTaskProgressRepo(db *gorm.DB) repositories.TaskProgressRepository {
	return repositories.NewTaskProgressRepository(db)
}

func provideTaskService(
	taskRepo repositories.TaskRepository,
	progressRepo repositories.TaskProgressRepository,
	earnings services.EarningsServiceInterface) services.TaskServiceInterface {
	return services.NewTaskService(taskRepo, progressRepo, earnings)
}
