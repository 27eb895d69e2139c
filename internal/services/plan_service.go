package services

import (
	"context"

	"earnhub/internal/models/db_models"
	"earnhub/internal/models/request_models"
	"earnhub/internal/models/response_models"
	"earnhub/internal/repositories"
	"earnhub/pkg/utils"
)

type PlanServiceInterface interface {
	GetActivePlans(ctx context.Context) ([]response_models.PlanSummary, error)
	GetPlanByID(ctx context.Context, planID string) (response_models.PlanSummary, error)
	CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (response_models.PlanSummary, error)
}

type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func toPlanSummary(plan *db_models.Plan) response_models.PlanSummary {
	return response_models.PlanSummary{
		ID:           plan.ID,
		Name:         plan.Name,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		DailyProfit:  plan.DailyProfit,
		TotalProfit:  plan.TotalProfit,
		IsActive:     plan.IsActive,
	}
}

func (p *PlanService) GetActivePlans(ctx context.Context) ([]response_models.PlanSummary, error) {
	plans, err := p.planRepo.GetActivePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanSummary, 0, len(plans))
	for i := range plans {
		result = append(result, toPlanSummary(&plans[i]))
	}
	return result, nil
}

func (p *PlanService) GetPlanByID(ctx context.Context, planID string) (response_models.PlanSummary, error) {
	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return response_models.PlanSummary{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.PlanSummary{}, utils.ErrPlanNotFound
	}

	return toPlanSummary(plan), nil
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (response_models.PlanSummary, error) {
	plan := &db_models.Plan{
		Name:         request.Name,
		Price:        request.Price,
		DurationDays: request.DurationDays,
		DailyProfit:  request.DailyProfit,
		TotalProfit:  request.TotalProfit,
		IsActive:     true,
	}

	templates := make([]db_models.Task, 0, len(request.Tasks))
	for _, tpl := range request.Tasks {
		templates = append(templates, db_models.Task{
			Type:   tpl.Type,
			URL:    tpl.URL,
			Price:  tpl.Price,
			Status: db_models.TaskStatusPending,
		})
	}

	if err := p.planRepo.CreatePlanWithTemplates(ctx, plan, templates); err != nil {
		return response_models.PlanSummary{}, utils.ErrDatabaseError
	}

	return toPlanSummary(plan), nil
}
