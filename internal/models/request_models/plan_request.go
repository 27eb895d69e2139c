package request_models

type TaskTemplateRequest struct {
	Type  string `json:"type" binding:"required"`
	URL   string `json:"url" binding:"required"`
	Price int64  `json:"price" binding:"required"`
}

type CreatePlanRequest struct {
	Name         string                `json:"name" binding:"required"`
	Price        int64                 `json:"price" binding:"required"`
	DurationDays int32                 `json:"durationDays" binding:"required"`
	DailyProfit  int64                 `json:"dailyProfit"`
	TotalProfit  int64                 `json:"totalProfit"`
	Tasks        []TaskTemplateRequest `json:"tasks"`
}
