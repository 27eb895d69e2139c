package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"earnhub/internal/models/db_models"
)

type PlanRepository interface {
	GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error)
	GetActivePlans(ctx context.Context) ([]db_models.Plan, error)
	CreatePlanWithTemplates(ctx context.Context, plan *db_models.Plan, templates []db_models.Task) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetActivePlans(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// CreatePlanWithTemplates stores a catalog plan and its task templates in
// one transaction. Templates carry the plan id and a nil user id.
func (r *planRepository) CreatePlanWithTemplates(ctx context.Context, plan *db_models.Plan, templates []db_models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range templates {
			templates[i].PlanID = plan.ID
			templates[i].UserID = nil
			templates[i].SubscriptionID = nil
		}
		if len(templates) == 0 {
			return nil
		}
		return tx.Create(&templates).Error
	})
}
