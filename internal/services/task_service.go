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

type TaskServiceInterface interface {
	// FetchForUser returns cooldown state when the task was completed
	// within the last 24 hours, otherwise the task content plus a fresh
	// arithmetic challenge.
	FetchForUser(ctx context.Context, taskID, userID string) (response_models.TaskFetchResponse, error)

	// Submit verifies the challenge answer, claims the cooldown window
	// atomically and credits the task payout into the earnings ledger.
	Submit(ctx context.Context, taskID, userID string, request request_models.SubmitTaskAnswerRequest) (response_models.SubmitTaskResponse, error)

	Statuses(ctx context.Context, userID string) ([]response_models.TaskStatusEntry, error)
}

type TaskService struct {
	taskRepo     repositories.TaskRepository
	progressRepo repositories.TaskProgressRepository
	earnings     EarningsServiceInterface
	now          func() int64
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	progressRepo repositories.TaskProgressRepository,
	earnings EarningsServiceInterface) TaskServiceInterface {
	return &TaskService{
		taskRepo:     taskRepo,
		progressRepo: progressRepo,
		earnings:     earnings,
		now:          utils.NowUnixSeconds,
	}
}

func onCooldown(progress *db_models.TaskProgress, now int64) bool {
	if progress == nil || progress.Status != db_models.TaskStatusCompleted {
		return false
	}
	// Sliding window measured from the last completion; an attempt at
	// exactly completedAt+24h is allowed again.
	return now < utils.NextAvailableUnix(progress.CompletedAt)
}

func (t *TaskService) FetchForUser(ctx context.Context, taskID, userID string) (response_models.TaskFetchResponse, error) {
	var empty response_models.TaskFetchResponse

	tid, err := uuid.Parse(taskID)
	if err != nil {
		return empty, utils.ErrValidation
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}

	progress, err := t.progressRepo.FindByTaskAndUser(ctx, tid, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}

	now := t.now()
	if onCooldown(progress, now) {
		// No task content is exposed while on cooldown.
		return response_models.TaskFetchResponse{
			IsCompleted:   true,
			NextAvailable: utils.NextAvailableUnix(progress.CompletedAt),
		}, nil
	}

	task, err := t.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if task == nil {
		return empty, utils.ErrTaskNotFound
	}

	challenge := utils.NewMathChallenge()
	return response_models.TaskFetchResponse{
		IsCompleted:  false,
		TaskID:       task.ID,
		TaskURL:      task.URL,
		TaskPrice:    task.Price,
		PlanID:       task.PlanID,
		PlanName:     task.Plan.Name,
		MathQuestion: &challenge,
	}, nil
}

func (t *TaskService) Submit(ctx context.Context, taskID, userID string, request request_models.SubmitTaskAnswerRequest) (response_models.SubmitTaskResponse, error) {
	var empty response_models.SubmitTaskResponse

	tid, err := uuid.Parse(taskID)
	if err != nil {
		return empty, utils.ErrValidation
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}

	if request.Answer != request.CorrectAnswer {
		return empty, utils.ErrIncorrectAnswer
	}

	now := t.now()
	claimed, err := t.progressRepo.ClaimCompletion(ctx, tid, uid, int32(request.Answer), now)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if !claimed {
		progress, err := t.progressRepo.FindByTaskAndUser(ctx, tid, uid)
		if err != nil || progress == nil {
			return empty, utils.ErrDatabaseError
		}
		return empty, utils.NewCooldownError(utils.NextAvailableUnix(progress.CompletedAt))
	}

	newTotal, err := t.earnings.Credit(ctx, uid, request.TaskPrice, now)
	if err != nil {
		zap.L().Error("credit after claim failed",
			zap.String("task_id", taskID),
			zap.String("user_id", userID),
			zap.Error(err))
		return empty, err
	}

	return response_models.SubmitTaskResponse{
		Earned:     request.TaskPrice,
		NewBalance: newTotal,
	}, nil
}

func (t *TaskService) Statuses(ctx context.Context, userID string) ([]response_models.TaskStatusEntry, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	rows, err := t.progressRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := t.now()
	entries := make([]response_models.TaskStatusEntry, 0, len(rows))
	for i := range rows {
		entry := response_models.TaskStatusEntry{
			TaskID:      rows[i].TaskID,
			Status:      string(rows[i].Status),
			CompletedAt: rows[i].CompletedAt,
		}
		if onCooldown(&rows[i], now) {
			entry.NextAvailable = utils.NextAvailableUnix(rows[i].CompletedAt)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
