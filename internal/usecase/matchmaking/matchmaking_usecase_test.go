package matchmaking

import (
	"context"
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/database/dbtest"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/lock"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/repository"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/fairness"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/match"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queueFixture struct {
	uc         *MatchmakingUseCase
	balanceSvc domain.BalanceService
	ratingRepo domain.RatingRepository
}

func setupQueue(t *testing.T) *queueFixture {
	db := dbtest.New(t)
	log := logger.NewNop()
	balanceSvc := balance.NewBalanceUseCase(
		repository.NewBalanceRepository(db),
		repository.NewLedgerRepository(db),
		db, log,
	)
	ratingRepo := repository.NewRatingRepository(db)
	matchUC := match.NewMatchUseCase(match.DefaultConfig(), balanceSvc,
		repository.NewMatchRepository(db),
		ratingRepo,
		repository.NewCommitmentRepository(db),
		repository.NewOutboxRepository(db),
		fairness.NewEngine(),
		db, log,
	)

	uc := NewMatchmakingUseCase(DefaultConfig(),
		repository.NewQueueRepository(db),
		ratingRepo, balanceSvc, matchUC,
		lock.NewLocalManager(log, time.Second),
		db, log,
	).(*MatchmakingUseCase)

	return &queueFixture{uc: uc, balanceSvc: balanceSvc, ratingRepo: ratingRepo}
}

func (f *queueFixture) fund(t *testing.T, account, amount string) {
	t.Helper()
	_, err := f.balanceSvc.Credit(context.Background(), domain.Mutation{
		Account: account,
		Amount:  decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
}

func (f *queueFixture) available(t *testing.T, account string) decimal.Decimal {
	t.Helper()
	b, err := f.balanceSvc.GetBalance(context.Background(), account)
	require.NoError(t, err)
	return b.Available
}

func (f *queueFixture) join(t *testing.T, account, stake string) *domain.JoinResult {
	t.Helper()
	result, err := f.uc.JoinQueue(context.Background(), domain.JoinQueueRequest{
		Account: account,
		Stake:   decimal.RequireFromString(stake),
	})
	require.NoError(t, err)
	return result
}

func TestJoinQueue_PairsCompatibleEntries(t *testing.T) {
	f := setupQueue(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")

	first := f.join(t, "alice", "10")
	assert.Nil(t, first.Match)
	assert.Equal(t, domain.QueueStatusWaiting, first.Entry.Status)
	assert.True(t, decimal.NewFromInt(7).Equal(first.Entry.MinStake))
	assert.True(t, decimal.NewFromInt(13).Equal(first.Entry.MaxStake))
	assert.True(t, decimal.NewFromInt(100).Equal(f.available(t, "alice")))

	second := f.join(t, "bob", "12")
	require.NotNil(t, second.Match)
	assert.Equal(t, domain.QueueStatusMatched, second.Entry.Status)
	assert.Equal(t, "alice", second.Match.PlayerA)
	assert.Equal(t, "bob", second.Match.PlayerB)
	assert.True(t, decimal.NewFromInt(11).Equal(second.Match.Stake))

	assert.True(t, decimal.NewFromInt(89).Equal(f.available(t, "alice")))
	assert.True(t, decimal.NewFromInt(89).Equal(f.available(t, "bob")))

	waiting, err := f.uc.ListQueue(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, waiting)

	again, err := f.uc.FindMatch(ctx, first.Entry.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, second.Match.ID, again.ID)
}

func TestJoinQueue_StakeAverageIsTruncated(t *testing.T) {
	f := setupQueue(t)
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")

	f.join(t, "alice", "10.00000001")
	result := f.join(t, "bob", "10")
	require.NotNil(t, result.Match)
	assert.True(t, decimal.RequireFromString("10").Equal(result.Match.Stake))
}

func TestJoinQueue_DisjointRangesKeepWaiting(t *testing.T) {
	f := setupQueue(t)
	f.fund(t, "alice", "1000")
	f.fund(t, "bob", "1000")

	f.join(t, "alice", "10")
	result := f.join(t, "bob", "100")
	assert.Nil(t, result.Match)

	waiting, err := f.uc.ListQueue(context.Background(), domain.GameTypeRPS, 10)
	require.NoError(t, err)
	require.Len(t, waiting, 2)
	assert.Equal(t, "alice", waiting[0].Account)
}

func TestJoinQueue_OneActiveEntryPerAccount(t *testing.T) {
	f := setupQueue(t)
	f.fund(t, "alice", "100")
	f.join(t, "alice", "10")

	_, err := f.uc.JoinQueue(context.Background(), domain.JoinQueueRequest{
		Account: "ALICE",
		Stake:   decimal.NewFromInt(10),
	})
	assert.True(t, domain.HasCode(err, domain.ErrCodeConflict))
}

func TestJoinQueue_RequiresFunds(t *testing.T) {
	f := setupQueue(t)
	f.fund(t, "alice", "5")

	_, err := f.uc.JoinQueue(context.Background(), domain.JoinQueueRequest{
		Account: "alice",
		Stake:   decimal.NewFromInt(10),
	})
	assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance))

	waiting, err := f.uc.ListQueue(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, waiting)
}

func TestJoinQueue_Validation(t *testing.T) {
	f := setupQueue(t)
	tests := []struct {
		name string
		req  domain.JoinQueueRequest
		code string
	}{
		{"missing account", domain.JoinQueueRequest{Stake: decimal.NewFromInt(1)}, domain.ErrCodeInvalidInput},
		{"zero stake", domain.JoinQueueRequest{Account: "alice", Stake: decimal.Zero}, domain.ErrCodeInvalidAmount},
		{"below minimum", domain.JoinQueueRequest{Account: "alice", Stake: decimal.RequireFromString("0.05")}, domain.ErrCodeInvalidInput},
		{"above maximum", domain.JoinQueueRequest{Account: "alice", Stake: decimal.NewFromInt(50001)}, domain.ErrCodeInvalidInput},
		{"unknown game", domain.JoinQueueRequest{Account: "alice", Stake: decimal.NewFromInt(1), GameType: "DICE"}, domain.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.JoinQueue(context.Background(), tt.req)
			assert.True(t, domain.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestFindMatch_CancelsUnaffordableCandidates(t *testing.T) {
	f := setupQueue(t)
	ctx := context.Background()
	f.fund(t, "alice", "10")
	f.fund(t, "bob", "100")

	f.join(t, "alice", "10")
	_, err := f.balanceSvc.Debit(ctx, domain.Mutation{Account: "alice", Amount: decimal.NewFromInt(5)})
	require.NoError(t, err)

	result := f.join(t, "bob", "10")
	assert.Nil(t, result.Match)

	waiting, err := f.uc.ListQueue(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, "bob", waiting[0].Account)
	assert.True(t, decimal.NewFromInt(5).Equal(f.available(t, "alice")))
}

func TestFindMatch_SkipsCandidateAboveOwnBalance(t *testing.T) {
	f := setupQueue(t)
	ctx := context.Background()
	f.fund(t, "carol", "100")
	f.fund(t, "dave", "100")
	f.fund(t, "bob", "12")

	carol := f.join(t, "carol", "16")
	require.Nil(t, carol.Match)
	dave := f.join(t, "dave", "8")
	require.Nil(t, dave.Match)

	result := f.join(t, "bob", "10")
	require.NotNil(t, result.Match)
	assert.Equal(t, "dave", result.Match.PlayerA)
	assert.Equal(t, "bob", result.Match.PlayerB)
	assert.True(t, decimal.NewFromInt(9).Equal(result.Match.Stake))
	assert.True(t, decimal.NewFromInt(3).Equal(f.available(t, "bob")))
	assert.True(t, decimal.NewFromInt(100).Equal(f.available(t, "carol")))

	waiting, err := f.uc.ListQueue(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, carol.Entry.ID, waiting[0].ID)
}

func TestLeaveQueue(t *testing.T) {
	f := setupQueue(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.join(t, "alice", "10")

	require.NoError(t, f.uc.LeaveQueue(ctx, "alice"))

	waiting, err := f.uc.ListQueue(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, waiting)

	err = f.uc.LeaveQueue(ctx, "alice")
	assert.True(t, domain.HasCode(err, domain.ErrCodeNotFound))
}

func TestCleanupExpired(t *testing.T) {
	f := setupQueue(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	entry := f.join(t, "alice", "10").Entry

	later := time.Now().UTC().Add(10 * time.Minute)
	f.uc.now = func() time.Time { return later }

	n, err := f.uc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = f.uc.FindMatch(ctx, entry.ID)
	assert.True(t, domain.HasCode(err, domain.ErrCodeConflict))

	f.fund(t, "bob", "100")
	result := f.join(t, "bob", "10")
	assert.Nil(t, result.Match)
}

func TestLeaderboard(t *testing.T) {
	f := setupQueue(t)
	ctx := context.Background()

	seed := func(account string, rating, played int) {
		require.NoError(t, f.ratingRepo.EnsureExists(ctx, account, 1000))
		r, err := f.ratingRepo.GetForUpdate(ctx, account)
		require.NoError(t, err)
		r.Rating = rating
		r.MatchesPlayed = played
		require.NoError(t, f.ratingRepo.Save(ctx, r))
	}
	seed("alice", 1250, 5)
	seed("bob", 1000, 2)
	seed("carol", 950, 3)
	seed("newcomer", 1000, 0)

	board, err := f.uc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, board, 3)

	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "alice", board[0].Account)
	assert.Equal(t, TierGold, board[0].Tier)
	assert.Equal(t, "bob", board[1].Account)
	assert.Equal(t, TierSilver, board[1].Tier)
	assert.Equal(t, 3, board[2].Rank)
	assert.Equal(t, TierBronze, board[2].Tier)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{100, TierBronze},
		{999, TierBronze},
		{1000, TierSilver},
		{1199, TierSilver},
		{1200, TierGold},
		{1400, TierPlatinum},
		{1600, TierDiamond},
		{2400, TierGrandmaster},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.rating), "rating %d", tt.rating)
	}
}
