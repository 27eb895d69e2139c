package response_models

import "github.com/google/uuid"

type SubscriptionSummary struct {
	SubscriptionID uuid.UUID `json:"subscriptionId"`
	PlanID         uuid.UUID `json:"planId"`
	Name           string    `json:"name"`
	Price          int64     `json:"price"`
	DurationDays   int32     `json:"durationDays"`
	DailyProfit    int64     `json:"dailyProfit"`
	TotalProfit    int64     `json:"totalProfit"`
	State          string    `json:"state"`
	PaymentGateway string    `json:"paymentGateway,omitempty"`
	TaxID          string    `json:"taxId,omitempty"`
	StartDate      int64     `json:"startDate"`
	EndDate        int64     `json:"endDate"`
}

type UserPlansResponse struct {
	Plans    []SubscriptionSummary `json:"plans"`
	Earnings EarningsSnapshot      `json:"earnings"`
}

type TaskSummary struct {
	TaskID    uuid.UUID `json:"taskId"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	StartDate int64     `json:"startDate"`
	EndDate   int64     `json:"endDate"`
}

type SubscriptionWithTasks struct {
	SubscriptionSummary
	Tasks []TaskSummary `json:"tasks"`
}

type PurchaseResponse struct {
	Subscription SubscriptionSummary `json:"subscription"`
	TaskIDs      []string            `json:"taskIds"`
}

type TotalDepositResponse struct {
	TotalDeposit int64 `json:"totalDeposit"`
}

// PurchasedPlanReview is the operator view of one purchase.
type PurchasedPlanReview struct {
	Subscription SubscriptionSummary `json:"planRequestDetail"`
	Username     string              `json:"username"`
	Email        string              `json:"email"`
	ReferredBy   string              `json:"referredBy"`
	Screenshot   string              `json:"paymentScreenshot"`
	Earnings     EarningsSnapshot    `json:"earnings"`
}
