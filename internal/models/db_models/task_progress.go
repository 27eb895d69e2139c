package db_models

import (
	"github.com/google/uuid"
)

// TaskProgress holds the latest completion per (task, user). Rows are
// upserted, never appended, so only the most recent cycle is retained.
// The composite unique index is also what makes the cooldown claim atomic.
type TaskProgress struct {
	BaseModel
	TaskID uuid.UUID `gorm:"uniqueIndex:idx_task_user"`
	UserID uuid.UUID `gorm:"uniqueIndex:idx_task_user;index"`

	Status          TaskStatus `gorm:"type:varchar(16);default:pending"`
	CompletedAt     int64      // unix seconds of the most recent completion
	SubmittedAnswer int32
}
