package db_models

import (
	"github.com/google/uuid"
)

// User carries no balance column: the earnings ledger is the single source
// of truth and any displayed balance is projected from it at read time.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"` // "user" | "admin"

	ReferralCode string     `gorm:"uniqueIndex"`
	ReferredBy   *uuid.UUID `gorm:"index"`

	Referrer *User `gorm:"foreignKey:ReferredBy"`
}
