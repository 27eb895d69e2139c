package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type SubscriptionState string

const (
	SubStatePending   SubscriptionState = "pending"
	SubStateActive    SubscriptionState = "active"
	SubStateRejected  SubscriptionState = "rejected"
	SubStateCompleted SubscriptionState = "completed"
)

// Subscription is a user's purchase of a catalog plan. DailyProfit and
// TotalProfit are copied from the plan at purchase time. TaxID may not be
// reused by the same user across purchases.
type Subscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"index;uniqueIndex:idx_user_tax"`
	PlanID uuid.UUID `gorm:"index"`

	State    SubscriptionState `gorm:"type:varchar(16);index;default:pending"`
	StartsAt int64             `gorm:"not null"`
	EndsAt   int64             `gorm:"not null"` // StartsAt + plan duration

	DailyProfit int64
	TotalProfit int64

	PaymentGateway    string
	PaymentScreenshot string
	TaxID             string `gorm:"uniqueIndex:idx_user_tax"`

	TaskIDs pq.StringArray `gorm:"type:text[]"` // ordered clone ids

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User User `gorm:"foreignKey:UserID"`
	Plan Plan `gorm:"foreignKey:PlanID"`
}
