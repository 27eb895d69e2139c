package response_models

import "github.com/google/uuid"

type WithdrawalSummary struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Username   string    `json:"username,omitempty"`
	Amount     int64     `json:"amount"`
	Method     string    `json:"method"`
	AccountRef string    `json:"accountRef,omitempty"`
	State      string    `json:"state"`
	CreatedAt  int64     `json:"createdAt"`
}
