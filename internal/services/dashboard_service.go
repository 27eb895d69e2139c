package services

import (
	"context"

	"earnhub/internal/models/response_models"
	"earnhub/internal/repositories"
	"earnhub/pkg/utils"
)

type DashboardServiceInterface interface {
	Overview(ctx context.Context) (response_models.DashboardOverview, error)
}

type DashboardService struct {
	userRepo       repositories.UserRepository
	subRepo        repositories.SubscriptionRepository
	earningsRepo   repositories.EarningsRepository
	withdrawalRepo repositories.WithdrawalRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	earningsRepo repositories.EarningsRepository,
	withdrawalRepo repositories.WithdrawalRepository) DashboardServiceInterface {
	return &DashboardService{
		userRepo:       userRepo,
		subRepo:        subRepo,
		earningsRepo:   earningsRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (d *DashboardService) Overview(ctx context.Context) (response_models.DashboardOverview, error) {
	var empty response_models.DashboardOverview

	users, err := d.userRepo.CountAll(ctx)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	byState, err := d.subRepo.CountByState(ctx)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	deposits, err := d.subRepo.SumAllPlanPrices(ctx)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	earningsPaid, err := d.earningsRepo.SumTotalEarnings(ctx)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	pendingWithdrawals, err := d.withdrawalRepo.CountPending(ctx)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	return response_models.DashboardOverview{
		TotalUsers:           users,
		SubscriptionsByState: byState,
		TotalDeposits:        deposits,
		TotalEarningsPaid:    earningsPaid,
		PendingWithdrawals:   pendingWithdrawals,
	}, nil
}
