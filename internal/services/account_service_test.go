package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"earnhub/internal/models/db_models"
	"earnhub/internal/models/request_models"
	"earnhub/pkg/utils"
)

func newAccountServiceForTest(userRepo *mockUserRepo, subRepo *mockSubRepo, earnings *fakeEarningsRepo, revoked *fakeRevokedTokens) AccountServiceInterface {
	return NewAccountService(userRepo, subRepo,
		NewEarningsService(earnings),
		NewReferralService(userRepo, subRepo),
		revoked)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return &db_models.User{Email: email}, nil
		},
	}
	svc := newAccountServiceForTest(userRepo, &mockSubRepo{}, newFakeEarningsRepo(), newFakeRevokedTokens())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountTakenUsername(t *testing.T) {
	userRepo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*db_models.User, error) {
			return &db_models.User{Username: username}, nil
		},
	}
	svc := newAccountServiceForTest(userRepo, &mockSubRepo{}, newFakeEarningsRepo(), newFakeRevokedTokens())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestCreateAccountLinksReferrer(t *testing.T) {
	referrerID := uuid.New()

	var inserted *db_models.User
	userRepo := &mockUserRepo{
		findByCodeFn: func(ctx context.Context, code string) (*db_models.User, error) {
			if code == "FRIEND01" {
				return &db_models.User{BaseModel: db_models.BaseModel{ID: referrerID}}, nil
			}
			// Generated codes are free.
			return nil, nil
		},
		insertFn: func(ctx context.Context, user *db_models.User) error {
			inserted = user
			return nil
		},
	}
	svc := newAccountServiceForTest(userRepo, &mockSubRepo{}, newFakeEarningsRepo(), newFakeRevokedTokens())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Username:     "bob",
		Email:        "bob@example.com",
		Password:     "password123",
		ReferralCode: "FRIEND01",
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)
	require.NotNil(t, inserted.ReferredBy)
	require.Equal(t, referrerID, *inserted.ReferredBy)
	require.Equal(t, "user", inserted.Role)
	require.Len(t, inserted.ReferralCode, referralCodeLength)
	require.NotEqual(t, "password123", inserted.PasswordHash)
	require.NoError(t, utils.ComparePasswords(inserted.PasswordHash, "password123"))
}

func TestCreateAccountUnknownReferralCode(t *testing.T) {
	svc := newAccountServiceForTest(&mockUserRepo{}, &mockSubRepo{}, newFakeEarningsRepo(), newFakeRevokedTokens())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Username:     "bob",
		Email:        "bob@example.com",
		Password:     "password123",
		ReferralCode: "NOPE0000",
	})
	require.ErrorIs(t, err, utils.ErrInvalidReferralCode)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return &db_models.User{
				BaseModel:    db_models.BaseModel{ID: uuid.New()},
				Email:        email,
				PasswordHash: hash,
				Role:         "user",
			}, nil
		},
	}
	svc := newAccountServiceForTest(userRepo, &mockSubRepo{}, newFakeEarningsRepo(), newFakeRevokedTokens())

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "battery-staple",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginIssuesToken(t *testing.T) {
	userID := uuid.New()
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return &db_models.User{
				BaseModel:    db_models.BaseModel{ID: userID},
				Email:        email,
				PasswordHash: hash,
				Role:         "admin",
			}, nil
		},
	}
	svc := newAccountServiceForTest(userRepo, &mockSubRepo{}, newFakeEarningsRepo(), newFakeRevokedTokens())

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), claims.UserID)
	require.Equal(t, "admin", claims.Role)
}

func TestLogoutRevokesToken(t *testing.T) {
	revoked := newFakeRevokedTokens()
	svc := newAccountServiceForTest(&mockUserRepo{}, &mockSubRepo{}, newFakeEarningsRepo(), revoked)

	token, err := utils.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	svc.Logout(token)
	require.True(t, revoked.IsRevoked(token))
}

func TestGetUserDetailsProjectsBalance(t *testing.T) {
	userID := uuid.New()
	referredID := uuid.New()
	planID := uuid.New()

	earnings := newFakeEarningsRepo()
	_, err := earnings.Credit(context.Background(), userID, 200, 1_700_000_000)
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
			return &db_models.User{
				BaseModel:    db_models.BaseModel{ID: userID},
				Username:     "alice",
				Email:        "alice@example.com",
				ReferralCode: "AL1CE000",
			}, nil
		},
		findReferredFn: func(ctx context.Context, id uuid.UUID) ([]db_models.User, error) {
			return []db_models.User{{BaseModel: db_models.BaseModel{ID: referredID}, Username: "bob"}}, nil
		},
	}
	subRepo := &mockSubRepo{
		findByUserFn: func(ctx context.Context, id uuid.UUID) ([]db_models.Subscription, error) {
			return []db_models.Subscription{{
				UserID: id,
				PlanID: planID,
				State:  db_models.SubStateActive,
				Plan:   db_models.Plan{Name: "Gold", Price: 1000},
			}}, nil
		},
		findEarliestFn: func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
			if id == referredID {
				return &db_models.Subscription{
					UserID: id,
					State:  db_models.SubStateActive,
					Plan:   db_models.Plan{Name: "Silver", Price: 1000},
				}, nil
			}
			return nil, nil
		},
	}
	svc := newAccountServiceForTest(userRepo, subRepo, earnings, newFakeRevokedTokens())

	resp, err := svc.GetUserDetails(context.Background(), userID.String())
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, 1, resp.TotalReferrals)
	require.Equal(t, int64(200), resp.TotalBalance)
	require.Equal(t, int64(50), resp.TotalReferralProfit)
	require.Equal(t, 1, resp.ActivePlansCount)
	require.Len(t, resp.PurchasedPlans, 1)
}
