package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"earnhub/internal/models/db_models"
)

type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *db_models.Withdrawal) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Withdrawal, error)
	ListAll(ctx context.Context) ([]db_models.Withdrawal, error)
	// TransitionState moves a pending withdrawal into the given state.
	// Returns false when the row is absent or no longer pending.
	TransitionState(ctx context.Context, id uuid.UUID, state db_models.WithdrawalState) (bool, error)
	CountPending(ctx context.Context) (int64, error)
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) Create(ctx context.Context, withdrawal *db_models.Withdrawal) error {
	return r.db.WithContext(ctx).Create(withdrawal).Error
}

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Withdrawal, error) {
	var rows []db_models.Withdrawal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *withdrawalRepository) ListAll(ctx context.Context) ([]db_models.Withdrawal, error) {
	var rows []db_models.Withdrawal
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *withdrawalRepository) TransitionState(ctx context.Context, id uuid.UUID, state db_models.WithdrawalState) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Withdrawal{}).
		Where("id = ? AND state = ?", id, db_models.WithdrawalPending).
		Update("state", state)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *withdrawalRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Withdrawal{}).
		Where("state = ?", db_models.WithdrawalPending).
		Count(&count).Error
	return count, err
}
