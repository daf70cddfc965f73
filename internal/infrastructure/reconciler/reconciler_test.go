package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain/mocks"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/lock"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcilerMocks struct {
	casino      *mocks.MockCasinoUseCase
	match       *mocks.MockMatchUseCase
	matchmaking *mocks.MockMatchmakingUseCase
}

func setupReconciler(t *testing.T, locker lock.Manager) (*Reconciler, reconcilerMocks, time.Time) {
	ctrl := gomock.NewController(t)
	m := reconcilerMocks{
		casino:      mocks.NewMockCasinoUseCase(ctrl),
		match:       mocks.NewMockMatchUseCase(ctrl),
		matchmaking: mocks.NewMockMatchmakingUseCase(ctrl),
	}
	if locker == nil {
		locker = lock.NewLocalManager(logger.NewNop(), time.Second)
	}
	r := NewReconciler(Config{GameTimeout: time.Minute, MatchTimeout: time.Hour},
		m.casino, m.match, m.matchmaking, locker, logger.NewNop())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	return r, m, now
}

func TestSweep_UsesConfiguredTimeouts(t *testing.T) {
	r, m, now := setupReconciler(t, nil)

	m.casino.EXPECT().ReconcileStale(gomock.Any(), now.Add(-time.Minute)).
		Return(&domain.StaleReport{Refunded: 2, Completed: 1}, nil)
	m.match.EXPECT().ReconcileStale(gomock.Any(), now.Add(-time.Hour)).
		Return(&domain.StaleReport{Refunded: 1}, nil)
	m.matchmaking.EXPECT().CleanupExpired(gomock.Any()).Return(int64(4), nil)

	report, err := r.Sweep(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Skipped)
	assert.Equal(t, 2, report.Games.Refunded)
	assert.Equal(t, 1, report.Games.Completed)
	assert.Equal(t, 1, report.Matches.Refunded)
	assert.Equal(t, int64(4), report.ExpiredEntries)
}

func TestSweep_ContinuesAfterStepFailure(t *testing.T) {
	r, m, _ := setupReconciler(t, nil)

	m.casino.EXPECT().ReconcileStale(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	m.match.EXPECT().ReconcileStale(gomock.Any(), gomock.Any()).Return(&domain.StaleReport{Completed: 3}, nil)
	m.matchmaking.EXPECT().CleanupExpired(gomock.Any()).Return(int64(0), errors.New("db down"))

	report, err := r.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StaleReport{}, report.Games)
	assert.Equal(t, 3, report.Matches.Completed)
}

func TestSweep_SkipsWhenLockHeld(t *testing.T) {
	locker := lock.NewLocalManager(logger.NewNop(), time.Second)
	release, ok, err := locker.TryLock(context.Background(), lockKey)
	require.NoError(t, err)
	require.True(t, ok)
	defer release()

	r, _, _ := setupReconciler(t, locker)

	report, err := r.Sweep(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Skipped)
}

func TestStartStop(t *testing.T) {
	r, m, _ := setupReconciler(t, nil)
	r.cfg.Interval = 5 * time.Millisecond

	m.casino.EXPECT().ReconcileStale(gomock.Any(), gomock.Any()).Return(&domain.StaleReport{}, nil).AnyTimes()
	m.match.EXPECT().ReconcileStale(gomock.Any(), gomock.Any()).Return(&domain.StaleReport{}, nil).AnyTimes()
	m.matchmaking.EXPECT().CleanupExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()

	r.Start()
	r.Start()
	time.Sleep(20 * time.Millisecond)
	r.Stop()
	r.Stop()
}
