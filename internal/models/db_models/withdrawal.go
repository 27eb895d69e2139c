package db_models

import (
	"github.com/google/uuid"
)

type WithdrawalState string

const (
	WithdrawalPending  WithdrawalState = "pending"
	WithdrawalApproved WithdrawalState = "approved"
	WithdrawalRejected WithdrawalState = "rejected"
)

type Withdrawal struct {
	BaseModel
	UserID     uuid.UUID `gorm:"index"`
	Amount     int64
	Method     string // payout gateway name
	AccountRef string // wallet / account number at the gateway
	State      WithdrawalState `gorm:"type:varchar(16);index;default:pending"`

	User User `gorm:"foreignKey:UserID"`
}
