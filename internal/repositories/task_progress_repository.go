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

type TaskProgressRepository interface {
	FindByTaskAndUser(ctx context.Context, taskID, userID uuid.UUID) (*db_models.TaskProgress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.TaskProgress, error)

	// ClaimCompletion records a completion for (taskID, userID) only if no
	// completion newer than the cooldown window exists, evaluated by the
	// database in a single conditional upsert. Returns false when the claim
	// lost to an existing completion still inside the window; two
	// concurrent submits can never both claim.
	ClaimCompletion(ctx context.Context, taskID, userID uuid.UUID, answer int32, now int64) (bool, error)
}

type taskProgressRepository struct {
	db *gorm.DB
}

func NewTaskProgressRepository(db *gorm.DB) TaskProgressRepository {
	return &taskProgressRepository{db: db}
}

func (r *taskProgressRepository) FindByTaskAndUser(ctx context.Context, taskID, userID uuid.UUID) (*db_models.TaskProgress, error) {
	var progress db_models.TaskProgress
	err := r.db.WithContext(ctx).
		First(&progress, "task_id = ? AND user_id = ?", taskID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (r *taskProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.TaskProgress, error) {
	var rows []db_models.TaskProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *taskProgressRepository) ClaimCompletion(ctx context.Context, taskID, userID uuid.UUID, answer int32, now int64) (bool, error) {
	cutoff := now - int64(utils.CooldownWindow/time.Second)

	progress := db_models.TaskProgress{
		TaskID:          taskID,
		UserID:          userID,
		Status:          db_models.TaskStatusCompleted,
		CompletedAt:     now,
		SubmittedAnswer: answer,
	}

	// ON CONFLICT (task_id, user_id) DO UPDATE ... WHERE the stored
	// completion is absent or older than the window. A row still on
	// cooldown makes the WHERE false, so nothing updates and
	// RowsAffected stays 0 — that is the lost claim.
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "task_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":           db_models.TaskStatusCompleted,
			"completed_at":     now,
			"submitted_answer": answer,
			"updated_at":       now,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("task_progresses.status <> ? OR task_progresses.completed_at <= ?",
				db_models.TaskStatusCompleted, cutoff),
		}},
	}).Create(&progress)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
