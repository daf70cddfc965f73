package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/database/dbtest"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/repository"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeeder(t *testing.T) *Seeder {
	db := dbtest.New(t)
	bs := balance.NewBalanceUseCase(
		repository.NewBalanceRepository(db),
		repository.NewLedgerRepository(db),
		db,
		logger.NewNop(),
	)
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "seed-secret", Expiry: time.Hour})
	return NewSeeder(bs, jwtSvc, logger.NewNop())
}

func TestSeedAccounts_FundsOnce(t *testing.T) {
	s := setupSeeder(t)
	ctx := context.Background()
	accounts := DefaultAccounts("treasury")

	funded, err := s.SeedAccounts(ctx, accounts)
	require.NoError(t, err)
	assert.Equal(t, 3, funded)

	funded, err = s.SeedAccounts(ctx, accounts)
	require.NoError(t, err)
	assert.Equal(t, 0, funded)

	b, err := s.balances.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(b.Available))

	history, err := s.balances.GetTransactionHistory(ctx, "treasury", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "seed", history[0].Metadata.Data().Transfer.Reference)
}

func TestSeedAccounts_NormalizesNames(t *testing.T) {
	s := setupSeeder(t)
	ctx := context.Background()

	_, err := s.SeedAccounts(ctx, []Account{{Name: " Carol ", Deposit: decimal.NewFromInt(5)}})
	require.NoError(t, err)

	b, err := s.balances.GetBalance(ctx, "carol")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(b.Available))
}

func TestIssueTokens(t *testing.T) {
	s := setupSeeder(t)

	tokens, err := s.IssueTokens(DefaultAccounts("treasury"))
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	claims, err := s.tokens.ValidateToken(tokens["operator"])
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Account)
	assert.Equal(t, auth.RoleOperator, claims.Role)

	s.tokens = nil
	tokens, err = s.IssueTokens(DefaultAccounts("treasury"))
	require.NoError(t, err)
	assert.Nil(t, tokens)
}
