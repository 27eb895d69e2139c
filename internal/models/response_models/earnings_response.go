package response_models

type DailyEarningEntry struct {
	Date   int64 `json:"date"` // unix second of UTC midnight
	Amount int64 `json:"amount"`
}

type EarningsSnapshot struct {
	TotalEarnings int64               `json:"totalEarnings"`
	DailyEarnings []DailyEarningEntry `json:"dailyEarnings"`
}
