package db_models

import (
	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task doubles as a plan-level template and a per-user clone, matching the
// catalog layout: rows with a nil UserID are seed templates attached to a
// plan; purchasing clones each template with UserID and SubscriptionID set.
type Task struct {
	BaseModel
	PlanID         uuid.UUID  `gorm:"index"`
	UserID         *uuid.UUID `gorm:"index"` // nil for templates
	SubscriptionID *uuid.UUID `gorm:"index"` // nil for templates

	Type   string
	URL    string
	Price  int64
	Status TaskStatus `gorm:"type:varchar(16);default:pending"`

	StartsAt int64
	EndsAt   int64 // clones inherit the subscription's end date

	Plan Plan `gorm:"foreignKey:PlanID"`
}
