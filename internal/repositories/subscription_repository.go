package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"earnhub/internal/models/db_models"
)

type SubscriptionRepository interface {
	// CreatePurchase persists the subscription, clones the plan's task
	// templates for the purchaser and links the clone ids back onto the
	// subscription, all inside one transaction. A failure at any step
	// rolls back the whole purchase.
	CreatePurchase(ctx context.Context, sub *db_models.Subscription, templates []db_models.Task) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error)
	FindByUserAndTaxID(ctx context.Context, userID uuid.UUID, taxID string) (*db_models.Subscription, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
	// FindEarliestActiveByUser returns the user's oldest active
	// subscription by creation time, or nil when none exists.
	FindEarliestActiveByUser(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error)
	FindAll(ctx context.Context) ([]db_models.Subscription, error)

	// TransitionState moves a pending subscription into the given state.
	// Returns false when the row is absent or no longer pending.
	TransitionState(ctx context.Context, id uuid.UUID, state db_models.SubscriptionState) (bool, error)

	SumPlanPricesByUser(ctx context.Context, userID uuid.UUID) (int64, bool, error)
	SumAllPlanPrices(ctx context.Context) (int64, error)
	CountByState(ctx context.Context) (map[string]int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreatePurchase(ctx context.Context, sub *db_models.Subscription, templates []db_models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		clones := make([]db_models.Task, 0, len(templates))
		for _, tpl := range templates {
			userID := sub.UserID
			subID := sub.ID
			clones = append(clones, db_models.Task{
				PlanID:         sub.PlanID,
				UserID:         &userID,
				SubscriptionID: &subID,
				Type:           tpl.Type,
				URL:            tpl.URL,
				Price:          tpl.Price,
				Status:         db_models.TaskStatusPending,
				StartsAt:       sub.StartsAt,
				EndsAt:         sub.EndsAt,
			})
		}
		if err := tx.Create(&clones).Error; err != nil {
			return err
		}

		taskIDs := make([]string, 0, len(clones))
		for _, clone := range clones {
			taskIDs = append(taskIDs, clone.ID.String())
		}
		sub.TaskIDs = taskIDs

		return tx.Model(sub).Update("task_ids", sub.TaskIDs).Error
	})
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).Preload("Plan").First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindByUserAndTaxID(ctx context.Context, userID uuid.UUID, taxID string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		First(&sub, "user_id = ? AND tax_id = ?", userID, taxID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ? AND state = ?", userID, db_models.SubStateActive).
		Order("created_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) FindEarliestActiveByUser(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ? AND state = ?", userID, db_models.SubStateActive).
		Order("created_at ASC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindAll(ctx context.Context) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Preload("User").
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) TransitionState(ctx context.Context, id uuid.UUID, state db_models.SubscriptionState) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ? AND state = ?", id, db_models.SubStatePending).
		Update("state", state)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *subscriptionRepository) SumPlanPricesByUser(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	var row struct {
		Total int64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Select("COALESCE(SUM(plans.price), 0) AS total, COUNT(*) AS count").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Where("subscriptions.user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return 0, false, err
	}
	return row.Total, row.Count > 0, nil
}

func (r *subscriptionRepository) SumAllPlanPrices(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Select("COALESCE(SUM(plans.price), 0)").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Scan(&total).Error
	return total, err
}

func (r *subscriptionRepository) CountByState(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		State string
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Select("state, COUNT(*) AS count").
		Group("state").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}
	return counts, nil
}
