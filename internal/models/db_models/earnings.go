package db_models

import (
	"github.com/google/uuid"
)

// Earnings is the per-user running total. It only ever increments.
type Earnings struct {
	BaseModel
	UserID        uuid.UUID `gorm:"uniqueIndex"`
	TotalEarnings int64
}

// DailyEarning accumulates credits per calendar day. Day is the unix second
// of UTC midnight; at most one row exists per (user, day).
type DailyEarning struct {
	BaseModel
	UserID uuid.UUID `gorm:"uniqueIndex:idx_user_day"`
	Day    int64     `gorm:"uniqueIndex:idx_user_day"`
	Amount int64
}
