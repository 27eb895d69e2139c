package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"earnhub/internal/models/db_models"
)

type TaskRepository interface {
	GetTaskByID(ctx context.Context, taskID string) (*db_models.Task, error)
	GetTemplatesByPlan(ctx context.Context, planID uuid.UUID) ([]db_models.Task, error)
	GetClonesBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) GetTaskByID(ctx context.Context, taskID string) (*db_models.Task, error) {
	var task db_models.Task
	err := r.db.WithContext(ctx).Preload("Plan").First(&task, "id = ?", taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetTemplatesByPlan(ctx context.Context, planID uuid.UUID) ([]db_models.Task, error) {
	var templates []db_models.Task
	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND user_id IS NULL", planID).
		Order("created_at ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *taskRepository) GetClonesBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
