package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"earnhub/pkg/utils"
)

func TestCreditSameDayAccumulatesOneBucket(t *testing.T) {
	userID := uuid.New()
	repo := newFakeEarningsRepo()
	svc := NewEarningsService(repo)

	morning := int64(1_700_000_000)
	evening := morning + 10*3600

	total, err := svc.Credit(context.Background(), userID, 40, morning)
	require.NoError(t, err)
	require.Equal(t, int64(40), total)

	total, err = svc.Credit(context.Background(), userID, 60, evening)
	require.NoError(t, err)
	require.Equal(t, int64(100), total)

	snapshot, err := svc.Snapshot(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, int64(100), snapshot.TotalEarnings)
	require.Len(t, snapshot.DailyEarnings, 1)
	require.Equal(t, utils.DayStartUnix(morning), snapshot.DailyEarnings[0].Date)
	require.Equal(t, int64(100), snapshot.DailyEarnings[0].Amount)
}

func TestCreditAcrossDaysSplitsBuckets(t *testing.T) {
	userID := uuid.New()
	repo := newFakeEarningsRepo()
	svc := NewEarningsService(repo)

	day1 := int64(1_700_000_000)
	day2 := day1 + 86400

	_, err := svc.Credit(context.Background(), userID, 40, day1)
	require.NoError(t, err)
	_, err = svc.Credit(context.Background(), userID, 40, day2)
	require.NoError(t, err)

	snapshot, err := svc.Snapshot(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, int64(80), snapshot.TotalEarnings)
	require.Len(t, snapshot.DailyEarnings, 2)
}

func TestSnapshotUnknownUserIsZeroed(t *testing.T) {
	svc := NewEarningsService(newFakeEarningsRepo())

	snapshot, err := svc.Snapshot(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Zero(t, snapshot.TotalEarnings)
	require.Empty(t, snapshot.DailyEarnings)
}

func TestCreditRepositoryFailure(t *testing.T) {
	repo := newFakeEarningsRepo()
	repo.err = utils.ErrDatabaseError
	svc := NewEarningsService(repo)

	_, err := svc.Credit(context.Background(), uuid.New(), 40, 1_700_000_000)
	require.ErrorIs(t, err, utils.ErrDatabaseError)
}
