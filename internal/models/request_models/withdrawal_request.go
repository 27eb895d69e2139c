package request_models

type CreateWithdrawalRequest struct {
	Amount     int64  `json:"amount" binding:"required"`
	Method     string `json:"method" binding:"required"`
	AccountRef string `json:"accountRef"`
}

type UpdateWithdrawalStateRequest struct {
	WithdrawalID string `json:"withdrawalId" binding:"required"`
	State        string `json:"state" binding:"required,oneof=approved rejected"`
}
