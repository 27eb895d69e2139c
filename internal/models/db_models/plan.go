package db_models

import (
	"gorm.io/datatypes"
)

// Plan is a catalog tier. Profit fields are snapshotted onto subscriptions
// at purchase time, so later catalog edits never rewrite live purchases.
type Plan struct {
	BaseModel
	Name         string `gorm:"uniqueIndex"`
	Price        int64  // whole currency units
	DurationDays int32
	DailyProfit  int64
	TotalProfit  int64
	IsActive     bool `gorm:"default:true"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
