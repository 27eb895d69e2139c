package services

import (
	"context"

	"github.com/google/uuid"

	"earnhub/internal/models/db_models"
	"earnhub/internal/models/request_models"
	"earnhub/internal/models/response_models"
	"earnhub/internal/repositories"
	"earnhub/pkg/utils"
)

type WithdrawalServiceInterface interface {
	Request(ctx context.Context, userID string, request request_models.CreateWithdrawalRequest) (response_models.WithdrawalSummary, error)
	ListByUser(ctx context.Context, userID string) ([]response_models.WithdrawalSummary, error)
	ListAll(ctx context.Context) ([]response_models.WithdrawalSummary, error)
	UpdateState(ctx context.Context, request request_models.UpdateWithdrawalStateRequest) error
}

type WithdrawalService struct {
	withdrawalRepo repositories.WithdrawalRepository
	earnings       EarningsServiceInterface
}

func NewWithdrawalService(
	withdrawalRepo repositories.WithdrawalRepository,
	earnings EarningsServiceInterface) WithdrawalServiceInterface {
	return &WithdrawalService{
		withdrawalRepo: withdrawalRepo,
		earnings:       earnings,
	}
}

func toWithdrawalSummary(w *db_models.Withdrawal) response_models.WithdrawalSummary {
	return response_models.WithdrawalSummary{
		ID:         w.ID,
		UserID:     w.UserID,
		Username:   w.User.Username,
		Amount:     w.Amount,
		Method:     w.Method,
		AccountRef: w.AccountRef,
		State:      string(w.State),
		CreatedAt:  w.CreatedAt,
	}
}

func (s *WithdrawalService) Request(ctx context.Context, userID string, request request_models.CreateWithdrawalRequest) (response_models.WithdrawalSummary, error) {
	var empty response_models.WithdrawalSummary

	uid, err := uuid.Parse(userID)
	if err != nil {
		return empty, utils.ErrValidation
	}
	if request.Amount <= 0 || request.Method == "" {
		return empty, utils.ErrValidation
	}

	snapshot, err := s.earnings.Snapshot(ctx, uid)
	if err != nil {
		return empty, err
	}
	if request.Amount > snapshot.TotalEarnings {
		return empty, utils.ErrInsufficientBalance
	}

	withdrawal := &db_models.Withdrawal{
		UserID:     uid,
		Amount:     request.Amount,
		Method:     request.Method,
		AccountRef: request.AccountRef,
		State:      db_models.WithdrawalPending,
	}
	if err := s.withdrawalRepo.Create(ctx, withdrawal); err != nil {
		return empty, utils.ErrDatabaseError
	}

	return toWithdrawalSummary(withdrawal), nil
}

func (s *WithdrawalService) ListByUser(ctx context.Context, userID string) ([]response_models.WithdrawalSummary, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	rows, err := s.withdrawalRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.WithdrawalSummary, 0, len(rows))
	for i := range rows {
		result = append(result, toWithdrawalSummary(&rows[i]))
	}
	return result, nil
}

func (s *WithdrawalService) ListAll(ctx context.Context) ([]response_models.WithdrawalSummary, error) {
	rows, err := s.withdrawalRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.WithdrawalSummary, 0, len(rows))
	for i := range rows {
		result = append(result, toWithdrawalSummary(&rows[i]))
	}
	return result, nil
}

func (s *WithdrawalService) UpdateState(ctx context.Context, request request_models.UpdateWithdrawalStateRequest) error {
	id, err := uuid.Parse(request.WithdrawalID)
	if err != nil {
		return utils.ErrValidation
	}

	state := db_models.WithdrawalState(request.State)
	if state != db_models.WithdrawalApproved && state != db_models.WithdrawalRejected {
		return utils.ErrValidation
	}

	ok, err := s.withdrawalRepo.TransitionState(ctx, id, state)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrWithdrawalNotFound
	}
	return nil
}
