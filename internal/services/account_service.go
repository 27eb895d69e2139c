package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"earnhub/internal/models/db_models"
	"earnhub/internal/models/request_models"
	"earnhub/internal/models/response_models"
	"earnhub/internal/repositories"
	mem "earnhub/pkg/memcache"
	"earnhub/pkg/utils"
)

const referralCodeLength = 8

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)
	Logout(token string)
	GetUserDetails(ctx context.Context, userID string) (response_models.UserDetailsResponse, error)
	ListUsers(ctx context.Context) ([]response_models.UserSummary, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
	earnings EarningsServiceInterface
	referral ReferralServiceInterface
	revoked  mem.RevokedTokenStore
}

func NewAccountService(
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	earnings EarningsServiceInterface,
	referral ReferralServiceInterface,
	revoked mem.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		subRepo:  subRepo,
		earnings: earnings,
		referral: referral,
		revoked:  revoked,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	existing, err = a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrUsernameTaken
	}

	var referredBy *uuid.UUID
	if request.ReferralCode != "" {
		referrer, err := a.userRepo.FindByReferralCode(ctx, request.ReferralCode)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if referrer == nil {
			return utils.ErrInvalidReferralCode
		}
		referredBy = &referrer.ID
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	code, err := a.uniqueReferralCode(ctx)
	if err != nil {
		return err
	}

	user := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
		ReferralCode: code,
		ReferredBy:   referredBy,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		zap.L().Error("account insert failed", zap.String("email", request.Email), zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) uniqueReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := utils.GenerateReferralCode(referralCodeLength)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		taken, err := a.userRepo.FindByReferralCode(ctx, code)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if taken == nil {
			return code, nil
		}
	}
	return "", utils.ErrDatabaseError
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {
	var empty response_models.LoginResponse

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if user == nil {
		return empty, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return empty, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return empty, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{Token: token}, nil
}

// Logout revokes the presented token until its natural expiry. A token we
// cannot parse gets a full-lifetime revocation.
func (a *AccountService) Logout(token string) {
	ttl := 24 * time.Hour
	if claims, err := utils.ValidateToken(token); err == nil && claims != nil && claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	a.revoked.Revoke(token, ttl)
}

func (a *AccountService) GetUserDetails(ctx context.Context, userID string) (response_models.UserDetailsResponse, error) {
	var empty response_models.UserDetailsResponse

	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}

	user, err := a.userRepo.FindByID(ctx, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if user == nil {
		return empty, utils.ErrUserNotFound
	}

	referred, err := a.userRepo.FindReferredUsers(ctx, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	referrals := make([]response_models.ReferralSummary, 0, len(referred))
	for i := range referred {
		referrals = append(referrals, response_models.ReferralSummary{
			Username:     referred[i].Username,
			Email:        referred[i].Email,
			ReferralCode: referred[i].ReferralCode,
		})
	}

	subs, err := a.subRepo.FindByUser(ctx, uid)
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	plans := make([]response_models.SubscriptionSummary, 0, len(subs))
	activeCount := 0
	for i := range subs {
		if subs[i].State == db_models.SubStateActive {
			activeCount++
		}
		plans = append(plans, toSubscriptionSummary(&subs[i]))
	}

	snapshot, err := a.earnings.Snapshot(ctx, uid)
	if err != nil {
		return empty, err
	}

	referralProfit, err := a.referral.TotalProfitFor(ctx, uid)
	if err != nil {
		return empty, err
	}

	return response_models.UserDetailsResponse{
		Username:            user.Username,
		Email:               user.Email,
		ReferralCode:        user.ReferralCode,
		TotalReferrals:      len(referrals),
		Referrals:           referrals,
		TotalBalance:        snapshot.TotalEarnings,
		TotalReferralProfit: referralProfit,
		ActivePlansCount:    activeCount,
		PurchasedPlans:      plans,
	}, nil
}

func (a *AccountService) ListUsers(ctx context.Context) ([]response_models.UserSummary, error) {
	users, err := a.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.UserSummary, 0, len(users))
	for i := range users {
		snapshot, err := a.earnings.Snapshot(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, response_models.UserSummary{
			ID:       users[i].ID,
			Username: users[i].Username,
			Email:    users[i].Email,
			Role:     users[i].Role,
			Balance:  snapshot.TotalEarnings,
		})
	}
	return result, nil
}
