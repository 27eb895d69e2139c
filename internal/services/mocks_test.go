package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"earnhub/internal/models/db_models"
	"earnhub/internal/repositories"
	"earnhub/pkg/utils"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

// ---------- plan repository ----------

type mockPlanRepo struct {
	getByIDFn   func(ctx context.Context, planID string) (*db_models.Plan, error)
	getActiveFn func(ctx context.Context) ([]db_models.Plan, error)
	createFn    func(ctx context.Context, plan *db_models.Plan, templates []db_models.Task) error
}

func (m *mockPlanRepo) GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, planID)
	}
	return nil, nil
}

func (m *mockPlanRepo) GetActivePlans(ctx context.Context) ([]db_models.Plan, error) {
	if m.getActiveFn != nil {
		return m.getActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepo) CreatePlanWithTemplates(ctx context.Context, plan *db_models.Plan, templates []db_models.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, plan, templates)
	}
	return nil
}

// ---------- subscription repository ----------

type mockSubRepo struct {
	createPurchaseFn func(ctx context.Context, sub *db_models.Subscription, templates []db_models.Task) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error)
	findByTaxFn      func(ctx context.Context, userID uuid.UUID, taxID string) (*db_models.Subscription, error)
	findByUserFn     func(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
	findActiveFn     func(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
	findEarliestFn   func(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error)
	findAllFn        func(ctx context.Context) ([]db_models.Subscription, error)
	transitionFn     func(ctx context.Context, id uuid.UUID, state db_models.SubscriptionState) (bool, error)
	sumByUserFn      func(ctx context.Context, userID uuid.UUID) (int64, bool, error)
	sumAllFn         func(ctx context.Context) (int64, error)
	countByStateFn   func(ctx context.Context) (map[string]int64, error)
}

func (m *mockSubRepo) CreatePurchase(ctx context.Context, sub *db_models.Subscription, templates []db_models.Task) error {
	if m.createPurchaseFn != nil {
		return m.createPurchaseFn(ctx, sub, templates)
	}
	return nil
}

func (m *mockSubRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Subscription, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSubRepo) FindByUserAndTaxID(ctx context.Context, userID uuid.UUID, taxID string) (*db_models.Subscription, error) {
	if m.findByTaxFn != nil {
		return m.findByTaxFn(ctx, userID, taxID)
	}
	return nil, nil
}

func (m *mockSubRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	if m.findActiveFn != nil {
		return m.findActiveFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubRepo) FindEarliestActiveByUser(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error) {
	if m.findEarliestFn != nil {
		return m.findEarliestFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubRepo) FindAll(ctx context.Context) ([]db_models.Subscription, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSubRepo) TransitionState(ctx context.Context, id uuid.UUID, state db_models.SubscriptionState) (bool, error) {
	if m.transitionFn != nil {
		return m.transitionFn(ctx, id, state)
	}
	return false, nil
}

func (m *mockSubRepo) SumPlanPricesByUser(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	if m.sumByUserFn != nil {
		return m.sumByUserFn(ctx, userID)
	}
	return 0, false, nil
}

func (m *mockSubRepo) SumAllPlanPrices(ctx context.Context) (int64, error) {
	if m.sumAllFn != nil {
		return m.sumAllFn(ctx)
	}
	return 0, nil
}

func (m *mockSubRepo) CountByState(ctx context.Context) (map[string]int64, error) {
	if m.countByStateFn != nil {
		return m.countByStateFn(ctx)
	}
	return map[string]int64{}, nil
}

// ---------- task repository ----------

type mockTaskRepo struct {
	getByIDFn      func(ctx context.Context, taskID string) (*db_models.Task, error)
	getTemplatesFn func(ctx context.Context, planID uuid.UUID) ([]db_models.Task, error)
	getClonesFn    func(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.Task, error)
}

func (m *mockTaskRepo) GetTaskByID(ctx context.Context, taskID string) (*db_models.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, taskID)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetTemplatesByPlan(ctx context.Context, planID uuid.UUID) ([]db_models.Task, error) {
	if m.getTemplatesFn != nil {
		return m.getTemplatesFn(ctx, planID)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetClonesBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.Task, error) {
	if m.getClonesFn != nil {
		return m.getClonesFn(ctx, subscriptionID)
	}
	return nil, nil
}

// ---------- user repository ----------

type mockUserRepo struct {
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*db_models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*db_models.User, error)
	findByCodeFn     func(ctx context.Context, code string) (*db_models.User, error)
	findReferredFn   func(ctx context.Context, referrerID uuid.UUID) ([]db_models.User, error)
	insertFn         func(ctx context.Context, user *db_models.User) error
	listAllFn        func(ctx context.Context) ([]db_models.User, error)
	countAllFn       func(ctx context.Context) (int64, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByReferralCode(ctx context.Context, code string) (*db_models.User, error) {
	if m.findByCodeFn != nil {
		return m.findByCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockUserRepo) FindReferredUsers(ctx context.Context, referrerID uuid.UUID) ([]db_models.User, error) {
	if m.findReferredFn != nil {
		return m.findReferredFn(ctx, referrerID)
	}
	return nil, nil
}

func (m *mockUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]db_models.User, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

// ---------- withdrawal repository ----------

type mockWithdrawalRepo struct {
	createFn       func(ctx context.Context, withdrawal *db_models.Withdrawal) error
	listByUserFn   func(ctx context.Context, userID uuid.UUID) ([]db_models.Withdrawal, error)
	transitionFn   func(ctx context.Context, id uuid.UUID, state db_models.WithdrawalState) (bool, error)
	countPendingFn func(ctx context.Context) (int64, error)
}

func (m *mockWithdrawalRepo) Create(ctx context.Context, withdrawal *db_models.Withdrawal) error {
	if m.createFn != nil {
		return m.createFn(ctx, withdrawal)
	}
	return nil
}

func (m *mockWithdrawalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Withdrawal, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockWithdrawalRepo) ListAll(ctx context.Context) ([]db_models.Withdrawal, error) {
	return nil, nil
}

func (m *mockWithdrawalRepo) TransitionState(ctx context.Context, id uuid.UUID, state db_models.WithdrawalState) (bool, error) {
	if m.transitionFn != nil {
		return m.transitionFn(ctx, id, state)
	}
	return false, nil
}

func (m *mockWithdrawalRepo) CountPending(ctx context.Context) (int64, error) {
	if m.countPendingFn != nil {
		return m.countPendingFn(ctx)
	}
	return 0, nil
}

// ---------- in-memory fakes with real ledger/cooldown semantics ----------

// fakeEarningsRepo accumulates like the real repository: one bucket per
// (user, UTC day), a monotonic running total, both updated together.
type fakeEarningsRepo struct {
	totals map[uuid.UUID]int64
	daily  map[uuid.UUID]map[int64]int64
	err    error
}

func newFakeEarningsRepo() *fakeEarningsRepo {
	return &fakeEarningsRepo{
		totals: make(map[uuid.UUID]int64),
		daily:  make(map[uuid.UUID]map[int64]int64),
	}
}

func (f *fakeEarningsRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*db_models.Earnings, error) {
	if f.err != nil {
		return nil, f.err
	}
	total, ok := f.totals[userID]
	if !ok {
		return nil, nil
	}
	return &db_models.Earnings{UserID: userID, TotalEarnings: total}, nil
}

func (f *fakeEarningsRepo) GetDailyByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DailyEarning, error) {
	if f.err != nil {
		return nil, f.err
	}
	var rows []db_models.DailyEarning
	for day, amount := range f.daily[userID] {
		rows = append(rows, db_models.DailyEarning{UserID: userID, Day: day, Amount: amount})
	}
	return rows, nil
}

func (f *fakeEarningsRepo) SumTotalEarnings(ctx context.Context) (int64, error) {
	var sum int64
	for _, total := range f.totals {
		sum += total
	}
	return sum, nil
}

func (f *fakeEarningsRepo) Credit(ctx context.Context, userID uuid.UUID, amount int64, when int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	day := utils.DayStartUnix(when)
	f.totals[userID] += amount
	if f.daily[userID] == nil {
		f.daily[userID] = make(map[int64]int64)
	}
	f.daily[userID][day] += amount
	return f.totals[userID], nil
}

var _ repositories.EarningsRepository = (*fakeEarningsRepo)(nil)

// fakeProgressRepo mirrors the conditional upsert: a claim loses when a
// completion newer than the cooldown window exists for the pair.
type fakeProgressRepo struct {
	rows map[string]*db_models.TaskProgress
	err  error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]*db_models.TaskProgress)}
}

func progressKey(taskID, userID uuid.UUID) string {
	return fmt.Sprintf("%s|%s", taskID, userID)
}

func (f *fakeProgressRepo) FindByTaskAndUser(ctx context.Context, taskID, userID uuid.UUID) (*db_models.TaskProgress, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[progressKey(taskID, userID)], nil
}

func (f *fakeProgressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.TaskProgress, error) {
	if f.err != nil {
		return nil, f.err
	}
	var rows []db_models.TaskProgress
	for _, row := range f.rows {
		if row.UserID == userID {
			rows = append(rows, *row)
		}
	}
	return rows, nil
}

func (f *fakeProgressRepo) ClaimCompletion(ctx context.Context, taskID, userID uuid.UUID, answer int32, now int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	cutoff := now - int64(utils.CooldownWindow/time.Second)
	key := progressKey(taskID, userID)
	if existing, ok := f.rows[key]; ok {
		if existing.Status == db_models.TaskStatusCompleted && existing.CompletedAt > cutoff {
			return false, nil
		}
	}
	f.rows[key] = &db_models.TaskProgress{
		TaskID:          taskID,
		UserID:          userID,
		Status:          db_models.TaskStatusCompleted,
		CompletedAt:     now,
		SubmittedAnswer: answer,
	}
	return true, nil
}

var _ repositories.TaskProgressRepository = (*fakeProgressRepo)(nil)

// fakeRevokedTokens records revocations for logout tests.
type fakeRevokedTokens struct {
	revoked map[string]bool
}

func newFakeRevokedTokens() *fakeRevokedTokens {
	return &fakeRevokedTokens{revoked: make(map[string]bool)}
}

func (f *fakeRevokedTokens) Revoke(token string, ttl time.Duration) { f.revoked[token] = true }
func (f *fakeRevokedTokens) IsRevoked(token string) bool            { return f.revoked[token] }
