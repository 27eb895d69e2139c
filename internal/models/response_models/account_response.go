package response_models

import "github.com/google/uuid"

type LoginResponse struct {
	Token string `json:"token"`
}

type ReferralSummary struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	ReferralCode string `json:"referralCode"`
}

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Balance  int64     `json:"balance"` // projected from the earnings ledger
}

// UserDetailsResponse is the full profile used by the dashboard.
type UserDetailsResponse struct {
	Username            string                `json:"username"`
	Email               string                `json:"email"`
	ReferralCode        string                `json:"referralCode"`
	TotalReferrals      int                   `json:"totalReferrals"`
	Referrals           []ReferralSummary     `json:"referrals"`
	TotalBalance        int64                 `json:"totalBalance"`
	TotalReferralProfit int64                 `json:"totalReferralProfit"`
	ActivePlansCount    int                   `json:"activePlansCount"`
	PurchasedPlans      []SubscriptionSummary `json:"purchasedPlans"`
}
