package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"earnhub/internal/models/db_models"
	"earnhub/pkg/utils"
)

type EarningsRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*db_models.Earnings, error)
	GetDailyByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DailyEarning, error)
	SumTotalEarnings(ctx context.Context) (int64, error)

	// Credit adds amount to the user's running total and to the daily
	// bucket for the day containing `when`, creating either row as needed.
	// Both writes happen in one transaction; the new total is returned.
	Credit(ctx context.Context, userID uuid.UUID, amount int64, when int64) (int64, error)
}

type earningsRepository struct {
	db *gorm.DB
}

func NewEarningsRepository(db *gorm.DB) EarningsRepository {
	return &earningsRepository{db: db}
}

func (r *earningsRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*db_models.Earnings, error) {
	var earnings db_models.Earnings
	err := r.db.WithContext(ctx).First(&earnings, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &earnings, nil
}

func (r *earningsRepository) GetDailyByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DailyEarning, error) {
	var rows []db_models.DailyEarning
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *earningsRepository) SumTotalEarnings(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Earnings{}).
		Select("COALESCE(SUM(total_earnings), 0)").
		Scan(&total).Error
	return total, err
}

func (r *earningsRepository) Credit(ctx context.Context, userID uuid.UUID, amount int64, when int64) (int64, error) {
	day := utils.DayStartUnix(when)
	ts := time.Now().Unix()

	var newTotal int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := db_models.Earnings{UserID: userID, TotalEarnings: amount}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_earnings": gorm.Expr("earnings.total_earnings + ?", amount),
				"updated_at":     ts,
			}),
		}).Create(&total).Error; err != nil {
			return err
		}

		bucket := db_models.DailyEarning{UserID: userID, Day: day, Amount: amount}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"amount":     gorm.Expr("daily_earnings.amount + ?", amount),
				"updated_at": ts,
			}),
		}).Create(&bucket).Error; err != nil {
			return err
		}

		var current db_models.Earnings
		if err := tx.First(&current, "user_id = ?", userID).Error; err != nil {
			return err
		}
		newTotal = current.TotalEarnings
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newTotal, nil
}
