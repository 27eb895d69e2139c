package request_models

type PurchasePlanRequest struct {
	PlanID            string `json:"planId"`
	PaymentGateway    string `json:"paymentGateway"`
	PaymentScreenshot string `json:"paymentScreenshot"`
	TaxID             string `json:"taxId"`
}

type UpdatePlanStateRequest struct {
	SubscriptionID string `json:"subscriptionId" binding:"required"`
	State          string `json:"state" binding:"required,oneof=active rejected"`
}
