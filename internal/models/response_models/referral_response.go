package response_models

type ReferralDetail struct {
	Username       string `json:"username"`
	PlanName       string `json:"planName"`
	PlanPrice      int64  `json:"planPrice"`
	PlanExpiryDate int64  `json:"planExpiryDate"`
	ReferralProfit int64  `json:"referralProfit"`
}

type ReferralDetailsResponse struct {
	Username            string           `json:"username"`
	Email               string           `json:"email"`
	ReferralCode        string           `json:"referralCode"`
	ReferralDetails     []ReferralDetail `json:"referralDetails"`
	TotalReferralProfit int64            `json:"totalReferralProfit"`
}
