package services

import (
	"context"

	"github.com/google/uuid"

	"earnhub/internal/models/response_models"
	"earnhub/internal/repositories"
	"earnhub/pkg/utils"
)

type EarningsServiceInterface interface {
	// Credit adds amount to the user's running total and same-day bucket
	// and returns the new total. Callers pass non-negative task payouts.
	Credit(ctx context.Context, userID uuid.UUID, amount int64, when int64) (int64, error)

	// Snapshot returns the running total plus the per-day breakdown.
	// A user with no credits yet gets a zeroed snapshot.
	Snapshot(ctx context.Context, userID uuid.UUID) (response_models.EarningsSnapshot, error)
}

type EarningsService struct {
	earningsRepo repositories.EarningsRepository
}

func NewEarningsService(earningsRepo repositories.EarningsRepository) EarningsServiceInterface {
	return &EarningsService{
		earningsRepo: earningsRepo,
	}
}

func (e *EarningsService) Credit(ctx context.Context, userID uuid.UUID, amount int64, when int64) (int64, error) {
	newTotal, err := e.earningsRepo.Credit(ctx, userID, amount, when)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return newTotal, nil
}

func (e *EarningsService) Snapshot(ctx context.Context, userID uuid.UUID) (response_models.EarningsSnapshot, error) {
	snapshot := response_models.EarningsSnapshot{
		DailyEarnings: []response_models.DailyEarningEntry{},
	}

	earnings, err := e.earningsRepo.GetByUser(ctx, userID)
	if err != nil {
		return snapshot, utils.ErrDatabaseError
	}
	if earnings == nil {
		return snapshot, nil
	}
	snapshot.TotalEarnings = earnings.TotalEarnings

	daily, err := e.earningsRepo.GetDailyByUser(ctx, userID)
	if err != nil {
		return snapshot, utils.ErrDatabaseError
	}
	for _, row := range daily {
		snapshot.DailyEarnings = append(snapshot.DailyEarnings, response_models.DailyEarningEntry{
			Date:   row.Day,
			Amount: row.Amount,
		})
	}

	return snapshot, nil
}
