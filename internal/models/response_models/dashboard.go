package response_models

type DashboardOverview struct {
	TotalUsers           int64            `json:"totalUsers"`
	SubscriptionsByState map[string]int64 `json:"subscriptionsByState"`
	TotalDeposits        int64            `json:"totalDeposits"`
	TotalEarningsPaid    int64            `json:"totalEarningsPaid"`
	PendingWithdrawals   int64            `json:"pendingWithdrawals"`
}
