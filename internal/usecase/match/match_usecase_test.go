package match

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/database/dbtest"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/repository"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/fairness"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type constReader byte

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

var fixedServerSeed = strings.Repeat("cd", 32)

type matchFixture struct {
	uc         *MatchUseCase
	balanceSvc domain.BalanceService
	ratingRepo domain.RatingRepository
	db         *gorm.DB
}

func setupMatch(t *testing.T) *matchFixture {
	return setupMatchWith(t, DefaultConfig())
}

func setupMatchWith(t *testing.T, cfg Config) *matchFixture {
	db := dbtest.New(t)
	log := logger.NewNop()
	balanceSvc := balance.NewBalanceUseCase(
		repository.NewBalanceRepository(db),
		repository.NewLedgerRepository(db),
		db, log,
	)
	ratingRepo := repository.NewRatingRepository(db)

	uc := NewMatchUseCase(cfg, balanceSvc,
		repository.NewMatchRepository(db),
		ratingRepo,
		repository.NewCommitmentRepository(db),
		repository.NewOutboxRepository(db),
		&fairness.Engine{Rand: constReader(0xcd)},
		db, log,
	).(*MatchUseCase)

	return &matchFixture{uc: uc, balanceSvc: balanceSvc, ratingRepo: ratingRepo, db: db}
}

func (f *matchFixture) fund(t *testing.T, account, amount string) {
	t.Helper()
	_, err := f.balanceSvc.Credit(context.Background(), domain.Mutation{
		Account: account,
		Amount:  decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
}

func (f *matchFixture) available(t *testing.T, account string) decimal.Decimal {
	t.Helper()
	b, err := f.balanceSvc.GetBalance(context.Background(), account)
	require.NoError(t, err)
	return b.Available
}

func (f *matchFixture) requireConsistent(t *testing.T, accounts ...string) {
	t.Helper()
	for _, account := range accounts {
		report, err := f.balanceSvc.Reconcile(context.Background(), account)
		require.NoError(t, err)
		assert.True(t, report.Consistent, "ledger of %s does not fold to its balance", account)
	}
}

func (f *matchFixture) rating(t *testing.T, account string) *domain.PlayerRating {
	t.Helper()
	r, err := f.ratingRepo.GetForUpdate(context.Background(), account)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func (f *matchFixture) create(t *testing.T, a, b, stake string) *domain.Match {
	t.Helper()
	m, err := f.uc.CreateMatch(context.Background(), domain.CreateMatchRequest{
		PlayerA:     a,
		PlayerB:     b,
		Stake:       decimal.RequireFromString(stake),
		ClientSeedA: "seed-" + a,
		ClientSeedB: "seed-" + b,
	})
	require.NoError(t, err)
	return m
}

func (f *matchFixture) play(t *testing.T, matchID string, rounds ...[2]domain.Move) {
	t.Helper()
	for i, r := range rounds {
		_, err := f.uc.RecordRound(context.Background(), matchID, i+1, r[0], r[1])
		require.NoError(t, err)
	}
}

var (
	aWins = [2]domain.Move{domain.MoveRock, domain.MoveScissors}
	bWins = [2]domain.Move{domain.MoveRock, domain.MovePaper}
	tie   = [2]domain.Move{domain.MovePaper, domain.MovePaper}
)

func TestSettleMatch_WinnerTakesPotLessFee(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")

	m := f.create(t, "alice", "bob", "50")
	assert.True(t, decimal.NewFromInt(50).Equal(f.available(t, "alice")))
	assert.True(t, decimal.NewFromInt(50).Equal(f.available(t, "bob")))

	f.play(t, m.ID, aWins, bWins, aWins)

	s, err := f.uc.SettleMatch(ctx, m.ID)
	require.NoError(t, err)

	require.NotNil(t, s.Winner)
	assert.Equal(t, "alice", *s.Winner)
	assert.False(t, s.IsDraw)
	assert.True(t, decimal.NewFromInt(100).Equal(s.Pot))
	assert.True(t, decimal.NewFromInt(95).Equal(s.Payout))
	assert.True(t, decimal.NewFromInt(5).Equal(s.HouseFee))
	assert.Equal(t, 16, s.RatingDeltaA)
	assert.Equal(t, -16, s.RatingDeltaB)
	assert.Equal(t, 1016, s.RatingAfterA)
	assert.Equal(t, 984, s.RatingAfterB)

	assert.True(t, decimal.NewFromInt(145).Equal(f.available(t, "alice")))
	assert.True(t, decimal.NewFromInt(50).Equal(f.available(t, "bob")))
	assert.True(t, decimal.NewFromInt(5).Equal(f.available(t, "treasury")))

	assert.Equal(t, fixedServerSeed, s.Fairness.ServerSeed)
	assert.True(t, fairness.Verify(s.Fairness.ServerSeedHash, s.Fairness.ServerSeed))

	alice := f.rating(t, "alice")
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 1, alice.MatchesPlayed)
	assert.True(t, decimal.NewFromInt(45).Equal(alice.TotalEarnings))
	bob := f.rating(t, "bob")
	assert.Equal(t, 1, bob.Losses)
	assert.True(t, decimal.NewFromInt(-50).Equal(bob.TotalEarnings))

	stored, err := f.uc.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchStatusSettled, stored.Status)
	assert.Len(t, stored.Rounds, 3)
	require.NotNil(t, stored.SettledAt)

	require.Len(t, stored.Ledger, 4)
	var wagers, wins, fees int
	for _, row := range stored.Ledger {
		require.NotNil(t, row.GameID)
		assert.Equal(t, m.ID, *row.GameID)
		switch row.Type {
		case domain.TransactionTypeWager:
			wagers++
		case domain.TransactionTypeWin:
			wins++
		case domain.TransactionTypeHouseEdge:
			fees++
		}
	}
	assert.Equal(t, 2, wagers)
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, fees)
	f.requireConsistent(t, "alice", "bob", "treasury")

	var events int64
	require.NoError(t, f.db.Model(&domain.OutboxEvent{}).
		Where("type = ? AND aggregate_id = ?", domain.EventTypeMatchSettled, m.ID).
		Count(&events).Error)
	assert.Equal(t, int64(1), events)
}

func TestSettleMatch_ZeroFeePaysWholePot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FeeBps = 0
	f := setupMatchWith(t, cfg)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")

	m := f.create(t, "alice", "bob", "50")
	assert.Zero(t, m.FeeBps)
	f.play(t, m.ID, aWins, aWins)

	s, err := f.uc.SettleMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, s.HouseFee.IsZero())
	assert.True(t, decimal.NewFromInt(100).Equal(s.Payout))
	assert.True(t, decimal.NewFromInt(150).Equal(f.available(t, "alice")))
	assert.True(t, f.available(t, "treasury").IsZero())
	f.requireConsistent(t, "alice", "bob", "treasury")
}

func TestSettleMatch_IsIdempotent(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")

	m := f.create(t, "alice", "bob", "50")
	f.play(t, m.ID, bWins, bWins)

	first, err := f.uc.SettleMatch(ctx, m.ID)
	require.NoError(t, err)
	second, err := f.uc.SettleMatch(ctx, m.ID)
	require.NoError(t, err)

	assert.Equal(t, *first.Winner, *second.Winner)
	assert.True(t, first.Payout.Equal(second.Payout))
	assert.Equal(t, first.RatingDeltaB, second.RatingDeltaB)
	assert.True(t, decimal.NewFromInt(145).Equal(f.available(t, "bob")))
	assert.Equal(t, 1, f.rating(t, "bob").MatchesPlayed)

	var wins int64
	require.NoError(t, f.db.Model(&domain.LedgerTransaction{}).
		Where("account = ? AND type = ?", "bob", domain.TransactionTypeWin).
		Count(&wins).Error)
	assert.Equal(t, int64(1), wins)
}

func TestSettleMatch_DrawRefundsBothStakes(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")

	m := f.create(t, "alice", "bob", "50")
	f.play(t, m.ID, aWins, bWins, tie)

	s, err := f.uc.SettleMatch(ctx, m.ID)
	require.NoError(t, err)

	assert.True(t, s.IsDraw)
	assert.Nil(t, s.Winner)
	assert.True(t, s.HouseFee.IsZero())
	assert.Zero(t, s.RatingDeltaA)
	assert.Zero(t, s.RatingDeltaB)
	assert.True(t, decimal.NewFromInt(100).Equal(f.available(t, "alice")))
	assert.True(t, decimal.NewFromInt(100).Equal(f.available(t, "bob")))
	assert.True(t, f.available(t, "treasury").IsZero())
	assert.Equal(t, 1, f.rating(t, "alice").Draws)
	f.requireConsistent(t, "alice", "bob", "treasury")
}

func TestRecordRound_AfterSettleIsRejected(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")

	m := f.create(t, "alice", "bob", "10")
	f.play(t, m.ID, aWins, aWins)
	_, err := f.uc.SettleMatch(ctx, m.ID)
	require.NoError(t, err)

	_, err = f.uc.RecordRound(ctx, m.ID, 3, domain.MoveRock, domain.MovePaper)
	assert.True(t, domain.HasCode(err, domain.ErrCodeAlreadySettled))
}

func TestRecordRound_Validation(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")
	m := f.create(t, "alice", "bob", "10")

	tests := []struct {
		name  string
		id    string
		round int
		moveA domain.Move
		moveB domain.Move
		code  string
	}{
		{"skipped round", m.ID, 2, domain.MoveRock, domain.MovePaper, domain.ErrCodeInvalidInput},
		{"zero round", m.ID, 0, domain.MoveRock, domain.MovePaper, domain.ErrCodeInvalidInput},
		{"illegal move", m.ID, 1, domain.Move(4), domain.MovePaper, domain.ErrCodeInvalidInput},
		{"unknown match", "missing", 1, domain.MoveRock, domain.MovePaper, domain.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.RecordRound(ctx, tt.id, tt.round, tt.moveA, tt.moveB)
			assert.True(t, domain.HasCode(err, tt.code), "got %v", err)
		})
	}

	f.play(t, m.ID, aWins, aWins)
	_, err := f.uc.RecordRound(ctx, m.ID, 3, domain.MoveRock, domain.MovePaper)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
}

func TestRecordRound_AutoMovesComeFromCommitment(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")
	m := f.create(t, "alice", "bob", "10")

	result, err := f.uc.RecordRound(ctx, m.ID, 1, domain.MoveAuto, domain.MoveAuto)
	require.NoError(t, err)

	expect := func(clientSeed string) domain.Move {
		outcome, err := fairness.DeriveOutcome(fixedServerSeed, clientSeed, 1, domain.MoveCount)
		require.NoError(t, err)
		return domain.MoveFromOutcome(outcome)
	}
	assert.Equal(t, expect("seed-alice"), result.MoveA)
	assert.Equal(t, expect("seed-bob"), result.MoveB)
	assert.Equal(t, domain.ResolveRound(result.MoveA, result.MoveB), result.Winner)

	stored, err := f.uc.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, stored.Rounds, 1)
	assert.True(t, stored.Rounds[0].AutoA)
	assert.True(t, stored.Rounds[0].AutoB)
}

func TestSettleMatch_UndecidedIsRejected(t *testing.T) {
	f := setupMatch(t)
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "100")
	m := f.create(t, "alice", "bob", "10")
	f.play(t, m.ID, aWins)

	_, err := f.uc.SettleMatch(context.Background(), m.ID)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidInput))
}

func TestCreateMatch_InsufficientEscrowLeavesNothing(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	f.fund(t, "alice", "100")
	f.fund(t, "bob", "20")

	_, err := f.uc.CreateMatch(ctx, domain.CreateMatchRequest{
		PlayerA:     "alice",
		PlayerB:     "bob",
		Stake:       decimal.NewFromInt(50),
		ClientSeedA: "seed-alice",
		ClientSeedB: "seed-bob",
	})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance), "got %v", err)

	assert.True(t, decimal.NewFromInt(100).Equal(f.available(t, "alice")))
	assert.True(t, decimal.NewFromInt(20).Equal(f.available(t, "bob")))

	var matches, commitments int64
	require.NoError(t, f.db.Model(&domain.Match{}).Count(&matches).Error)
	require.NoError(t, f.db.Model(&domain.Commitment{}).Count(&commitments).Error)
	assert.Zero(t, matches)
	assert.Zero(t, commitments)

	var wagers int64
	require.NoError(t, f.db.Model(&domain.LedgerTransaction{}).
		Where("type = ?", domain.TransactionTypeWager).Count(&wagers).Error)
	assert.Zero(t, wagers)
}

func TestCreateMatch_Validation(t *testing.T) {
	f := setupMatch(t)
	tests := []struct {
		name string
		req  domain.CreateMatchRequest
	}{
		{"missing player", domain.CreateMatchRequest{PlayerA: "alice", Stake: decimal.NewFromInt(1)}},
		{"self play", domain.CreateMatchRequest{PlayerA: "alice", PlayerB: "ALICE", Stake: decimal.NewFromInt(1)}},
		{"treasury", domain.CreateMatchRequest{PlayerA: "alice", PlayerB: "treasury", Stake: decimal.NewFromInt(1)}},
		{"below minimum", domain.CreateMatchRequest{PlayerA: "alice", PlayerB: "bob", Stake: decimal.RequireFromString("0.01")}},
		{"too many decimals", domain.CreateMatchRequest{PlayerA: "alice", PlayerB: "bob", Stake: decimal.RequireFromString("1.000000001")}},
		{"same client seed", domain.CreateMatchRequest{PlayerA: "alice", PlayerB: "bob", Stake: decimal.NewFromInt(1), ClientSeedA: "x", ClientSeedB: "x"}},
		{"unknown game", domain.CreateMatchRequest{PlayerA: "alice", PlayerB: "bob", Stake: decimal.NewFromInt(1), GameType: "DICE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.CreateMatch(context.Background(), tt.req)
			require.Error(t, err)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Contains(t, []string{domain.ErrCodeInvalidInput, domain.ErrCodeInvalidAmount}, appErr.Code)
		})
	}
}

func TestReconcileStale_SettlesDecidedAndCancelsOpen(t *testing.T) {
	f := setupMatch(t)
	ctx := context.Background()
	for _, a := range []string{"alice", "bob", "carol", "dave"} {
		f.fund(t, a, "100")
	}

	decided := f.create(t, "alice", "bob", "50")
	f.play(t, decided.ID, aWins, aWins)
	open := f.create(t, "carol", "dave", "50")
	f.play(t, open.ID, bWins)

	report, err := f.uc.ReconcileStale(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 1, report.Refunded)
	assert.Zero(t, report.Failed)

	assert.True(t, decimal.NewFromInt(145).Equal(f.available(t, "alice")))
	assert.True(t, decimal.NewFromInt(100).Equal(f.available(t, "carol")))
	assert.True(t, decimal.NewFromInt(100).Equal(f.available(t, "dave")))

	cancelled, err := f.uc.GetMatch(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchStatusCancelled, cancelled.Status)

	_, err = f.uc.SettleMatch(ctx, open.ID)
	assert.True(t, domain.HasCode(err, domain.ErrCodeAlreadySettled))

	var commitment domain.Commitment
	require.NoError(t, f.db.Where("id = ?", cancelled.CommitmentID).First(&commitment).Error)
	assert.True(t, commitment.Revealed())
}

func TestRatingChange(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		scoreA float64
		want   int
	}{
		{"equal ratings win", 1000, 1000, 1, 16},
		{"equal ratings loss", 1000, 1000, 0, -16},
		{"equal ratings draw", 1000, 1000, 0.5, 0},
		{"favourite wins", 1400, 1000, 1, 3},
		{"underdog wins", 1000, 1400, 1, 29},
		{"underdog draws", 1000, 1400, 0.5, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RatingChange(tt.a, tt.b, 32, tt.scoreA)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, -got, RatingChange(tt.b, tt.a, 32, 1-tt.scoreA))
		})
	}
}

func TestApplyFloor(t *testing.T) {
	assert.Equal(t, 100, applyFloor(90, 100))
	assert.Equal(t, 150, applyFloor(150, 100))
}
