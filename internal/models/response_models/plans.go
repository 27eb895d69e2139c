package response_models

import "github.com/google/uuid"

type PlanSummary struct {
	ID           uuid.UUID `json:"planId"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	DurationDays int32     `json:"durationDays"`
	DailyProfit  int64     `json:"dailyProfit"`
	TotalProfit  int64     `json:"totalProfit"`
	IsActive     bool      `json:"isActive"`
}
