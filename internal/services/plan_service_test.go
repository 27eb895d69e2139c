package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"earnhub/internal/models/db_models"
	"earnhub/internal/models/request_models"
	"earnhub/pkg/utils"
)

func TestGetActivePlans(t *testing.T) {
	planRepo := &mockPlanRepo{
		getActiveFn: func(ctx context.Context) ([]db_models.Plan, error) {
			return []db_models.Plan{
				*silverPlan(uuid.New()),
				{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Gold", Price: 2500, DurationDays: 60, IsActive: true},
			}, nil
		},
	}
	svc := NewPlanService(planRepo)

	plans, err := svc.GetActivePlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "Silver", plans[0].Name)
	require.Equal(t, int64(2500), plans[1].Price)
}

func TestGetPlanByIDMissing(t *testing.T) {
	svc := NewPlanService(&mockPlanRepo{})

	_, err := svc.GetPlanByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestCreatePlanSeedsTemplates(t *testing.T) {
	var capturedTemplates []db_models.Task
	planRepo := &mockPlanRepo{
		createFn: func(ctx context.Context, plan *db_models.Plan, templates []db_models.Task) error {
			plan.ID = uuid.New()
			capturedTemplates = templates
			return nil
		},
	}
	svc := NewPlanService(planRepo)

	summary, err := svc.CreatePlan(context.Background(), request_models.CreatePlanRequest{
		Name:         "Bronze",
		Price:        500,
		DurationDays: 15,
		DailyProfit:  20,
		TotalProfit:  300,
		Tasks: []request_models.TaskTemplateRequest{
			{Type: "video", URL: "https://example.com/a", Price: 20},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Bronze", summary.Name)
	require.True(t, summary.IsActive)
	require.Len(t, capturedTemplates, 1)
	require.Equal(t, db_models.TaskStatusPending, capturedTemplates[0].Status)
}
