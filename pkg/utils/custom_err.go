package utils

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation           = errors.New("missing or malformed input")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrSubscriptionNotFound = errors.New("no pending subscription found for the given id")
	ErrWithdrawalNotFound   = errors.New("no pending withdrawal found for the given id")
	ErrNoActivePlans        = errors.New("no active plans found for this user")
	ErrNoPurchasedPlans     = errors.New("no purchased plans found for this user")
	ErrDuplicateTaxID       = errors.New("this taxId has already been used for a plan")
	ErrNoTasksForPlan       = errors.New("no tasks found for this plan")
	ErrIncorrectAnswer      = errors.New("incorrect answer")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidReferralCode  = errors.New("referral code not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInsufficientBalance  = errors.New("withdrawal amount exceeds balance")
	ErrDatabaseError        = errors.New("database error")
)

// CooldownError is returned when a task was completed within the last
// 24 hours. NextAvailable is the unix second at which the task unlocks.
type CooldownError struct {
	NextAvailable int64
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("task already completed recently, next available at %s",
		time.Unix(e.NextAvailable, 0).UTC().Format(time.RFC3339))
}

func NewCooldownError(nextAvailable int64) *CooldownError {
	return &CooldownError{NextAvailable: nextAvailable}
}
