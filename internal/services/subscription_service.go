package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"earnhub/internal/models/db_models"
	"earnhub/internal/models/request_models"
	"earnhub/internal/models/response_models"
	"earnhub/internal/repositories"
	"earnhub/pkg/utils"
)

const secondsPerDay = 86400

type SubscriptionServiceInterface interface {
	Purchase(ctx context.Context, userID string, request request_models.PurchasePlanRequest) (response_models.PurchaseResponse, error)
	UpdateState(ctx context.Context, request request_models.UpdatePlanStateRequest) error
	GetUserPlans(ctx context.Context, userID string) (response_models.UserPlansResponse, error)
	GetActivePlansWithTasks(ctx context.Context, userID string) ([]response_models.SubscriptionWithTasks, error)
	GetTotalDeposit(ctx context.Context, userID string) (response_models.TotalDepositResponse, error)
	GetAllPurchased(ctx context.Context) ([]response_models.PurchasedPlanReview, error)
}

type SubscriptionService struct {
	subRepo  repositories.SubscriptionRepository
	planRepo repositories.PlanRepository
	taskRepo repositories.TaskRepository
	earnings EarningsServiceInterface
}

func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	planRepo repositories.PlanRepository,
	taskRepo repositories.TaskRepository,
	earnings EarningsServiceInterface) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo:  subRepo,
		planRepo: planRepo,
		taskRepo: taskRepo,
		earnings: earnings,
	}
}

func toSubscriptionSummary(sub *db_models.Subscription) response_models.SubscriptionSummary {
	return response_models.SubscriptionSummary{
		SubscriptionID: sub.ID,
		PlanID:         sub.PlanID,
		Name:           sub.Plan.Name,
		Price:          sub.Plan.Price,
		DurationDays:   sub.Plan.DurationDays,
		DailyProfit:    sub.DailyProfit,
		TotalProfit:    sub.TotalProfit,
		State:          string(sub.State),
		PaymentGateway: sub.PaymentGateway,
		TaxID:          sub.TaxID,
		StartDate:      sub.StartsAt,
		EndDate:        sub.EndsAt,
	}
}

// Purchase creates a pending subscription with profit fields snapshotted
// from the plan, clones the plan's task templates for the purchaser and
// links the clone ids back. The repository runs the whole sequence in one
// transaction, so a plan without templates aborts cleanly.
func (s *SubscriptionService) Purchase(ctx context.Context, userID string, request request_models.PurchasePlanRequest) (response_models.PurchaseResponse, error) {
	var empty response_models.PurchaseResponse

	if request.PlanID == "" || request.PaymentGateway == "" ||
		request.PaymentScreenshot == "" || request.TaxID == "" {
		return empty, utils.ErrValidation
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}

	existing, err := s.subRepo.FindByUserAndTaxID(ctx, uid, request.TaxID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if existing != nil {
		return empty, utils.ErrDuplicateTaxID
	}

	plan, err := s.planRepo.GetPlanByID(ctx, request.PlanID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if plan == nil {
		return empty, utils.ErrPlanNotFound
	}

	templates, err := s.taskRepo.GetTemplatesByPlan(ctx, plan.ID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if len(templates) == 0 {
		return empty, utils.ErrNoTasksForPlan
	}

	now := utils.NowUnixSeconds()
	sub := &db_models.Subscription{
		UserID:            uid,
		PlanID:            plan.ID,
		State:             db_models.SubStatePending,
		StartsAt:          now,
		EndsAt:            now + int64(plan.DurationDays)*secondsPerDay,
		DailyProfit:       plan.DailyProfit,
		TotalProfit:       plan.TotalProfit,
		PaymentGateway:    request.PaymentGateway,
		PaymentScreenshot: request.PaymentScreenshot,
		TaxID:             request.TaxID,
	}

	if err := s.subRepo.CreatePurchase(ctx, sub, templates); err != nil {
		zap.L().Error("purchase failed", zap.String("user_id", userID), zap.Error(err))
		return empty, utils.ErrDatabaseError
	}

	sub.Plan = *plan
	return response_models.PurchaseResponse{
		Subscription: toSubscriptionSummary(sub),
		TaskIDs:      sub.TaskIDs,
	}, nil
}

// UpdateState is the operator approval path: one specific pending
// subscription transitions to active or rejected.
func (s *SubscriptionService) UpdateState(ctx context.Context, request request_models.UpdatePlanStateRequest) error {
	id, err := uuid.Parse(request.SubscriptionID)
	if err != nil {
		return utils.ErrValidation
	}

	state := db_models.SubscriptionState(request.State)
	if state != db_models.SubStateActive && state != db_models.SubStateRejected {
		return utils.ErrValidation
	}

	ok, err := s.subRepo.TransitionState(ctx, id, state)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrSubscriptionNotFound
	}
	return nil
}

func (s *SubscriptionService) GetUserPlans(ctx context.Context, userID string) (response_models.UserPlansResponse, error) {
	var empty response_models.UserPlansResponse

	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}

	subs, err := s.subRepo.FindByUser(ctx, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	snapshot, err := s.earnings.Snapshot(ctx, uid)
	if err != nil {
		return empty, err
	}

	plans := make([]response_models.SubscriptionSummary, 0, len(subs))
	for i := range subs {
		plans = append(plans, toSubscriptionSummary(&subs[i]))
	}

	return response_models.UserPlansResponse{
		Plans:    plans,
		Earnings: snapshot,
	}, nil
}

func (s *SubscriptionService) GetActivePlansWithTasks(ctx context.Context, userID string) ([]response_models.SubscriptionWithTasks, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	subs, err := s.subRepo.FindActiveByUser(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(subs) == 0 {
		return nil, utils.ErrNoActivePlans
	}

	result := make([]response_models.SubscriptionWithTasks, 0, len(subs))
	for i := range subs {
		tasks, err := s.taskRepo.GetClonesBySubscription(ctx, subs[i].ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		summaries := make([]response_models.TaskSummary, 0, len(tasks))
		for _, task := range tasks {
			summaries = append(summaries, response_models.TaskSummary{
				TaskID:    task.ID,
				Type:      task.Type,
				URL:       task.URL,
				Price:     task.Price,
				Status:    string(task.Status),
				StartDate: task.StartsAt,
				EndDate:   task.EndsAt,
			})
		}

		result = append(result, response_models.SubscriptionWithTasks{
			SubscriptionSummary: toSubscriptionSummary(&subs[i]),
			Tasks:               summaries,
		})
	}

	return result, nil
}

// GetTotalDeposit sums plan prices across all of a user's subscriptions
// regardless of state.
func (s *SubscriptionService) GetTotalDeposit(ctx context.Context, userID string) (response_models.TotalDepositResponse, error) {
	var empty response_models.TotalDepositResponse

	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}

	total, found, err := s.subRepo.SumPlanPricesByUser(ctx, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if !found {
		return empty, utils.ErrNoPurchasedPlans
	}

	return response_models.TotalDepositResponse{TotalDeposit: total}, nil
}

func (s *SubscriptionService) GetAllPurchased(ctx context.Context) ([]response_models.PurchasedPlanReview, error) {
	subs, err := s.subRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(subs) == 0 {
		return nil, utils.ErrNoPurchasedPlans
	}

	result := make([]response_models.PurchasedPlanReview, 0, len(subs))
	for i := range subs {
		sub := &subs[i]

		snapshot, err := s.earnings.Snapshot(ctx, sub.UserID)
		if err != nil {
			return nil, err
		}

		referredBy := "N/A"
		if sub.User.ReferredBy != nil {
			referredBy = sub.User.ReferredBy.String()
		}

		result = append(result, response_models.PurchasedPlanReview{
			Subscription: toSubscriptionSummary(sub),
			Username:     sub.User.Username,
			Email:        sub.User.Email,
			ReferredBy:   referredBy,
			Screenshot:   sub.PaymentScreenshot,
			Earnings:     snapshot,
		})
	}

	return result, nil
}
