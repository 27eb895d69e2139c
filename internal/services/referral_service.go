package services

import (
	"context"

	"github.com/google/uuid"

	"earnhub/internal/models/response_models"
	"earnhub/internal/repositories"
	"earnhub/pkg/utils"
)

// ReferralPercent is the referrer's share of a referred user's active
// subscription price.
const ReferralPercent = 5

type ReferralServiceInterface interface {
	GetReferralDetails(ctx context.Context, userID string) (response_models.ReferralDetailsResponse, error)

	// TotalProfitFor computes the summed referral profit for a referrer
	// without the per-referral breakdown.
	TotalProfitFor(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ReferralService struct {
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
}

func NewReferralService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository) ReferralServiceInterface {
	return &ReferralService{
		userRepo: userRepo,
		subRepo:  subRepo,
	}
}

func referralProfit(planPrice int64) int64 {
	return planPrice * ReferralPercent / 100
}

// GetReferralDetails is a read-time computation, not a stored ledger: for
// every referred user holding an active subscription, the referrer earns
// a fixed percentage of that subscription's plan price. A referred user
// with several active subscriptions counts once, by the earliest.
func (r *ReferralService) GetReferralDetails(ctx context.Context, userID string) (response_models.ReferralDetailsResponse, error) {
	var empty response_models.ReferralDetailsResponse

	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}

	user, err := r.userRepo.FindByID(ctx, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if user == nil {
		return empty, utils.ErrUserNotFound
	}

	referred, err := r.userRepo.FindReferredUsers(ctx, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	details := make([]response_models.ReferralDetail, 0, len(referred))
	var total int64
	for i := range referred {
		sub, err := r.subRepo.FindEarliestActiveByUser(ctx, referred[i].ID)
		if err != nil {
			return empty, utils.ErrDatabaseError
		}
		if sub == nil {
			continue
		}

		profit := referralProfit(sub.Plan.Price)
		total += profit
		details = append(details, response_models.ReferralDetail{
			Username:       referred[i].Username,
			PlanName:       sub.Plan.Name,
			PlanPrice:      sub.Plan.Price,
			PlanExpiryDate: sub.EndsAt,
			ReferralProfit: profit,
		})
	}

	return response_models.ReferralDetailsResponse{
		Username:            user.Username,
		Email:               user.Email,
		ReferralCode:        user.ReferralCode,
		ReferralDetails:     details,
		TotalReferralProfit: total,
	}, nil
}

func (r *ReferralService) TotalProfitFor(ctx context.Context, userID uuid.UUID) (int64, error) {
	referred, err := r.userRepo.FindReferredUsers(ctx, userID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	var total int64
	for i := range referred {
		sub, err := r.subRepo.FindEarliestActiveByUser(ctx, referred[i].ID)
		if err != nil {
			return 0, utils.ErrDatabaseError
		}
		if sub == nil {
			continue
		}
		total += referralProfit(sub.Plan.Price)
	}
	return total, nil
}
