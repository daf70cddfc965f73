package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Account is a demo account to fund
type Account struct {
	Name    string
	Deposit decimal.Decimal
	Role    string
}

// DefaultAccounts returns the development fixture: two players, an operator and the house treasury
func DefaultAccounts(treasury string) []Account {
	return []Account{
		{Name: "alice", Deposit: decimal.NewFromInt(1000), Role: auth.RolePlayer},
		{Name: "bob", Deposit: decimal.NewFromInt(1000), Role: auth.RolePlayer},
		{Name: "operator", Deposit: decimal.Zero, Role: auth.RoleOperator},
		{Name: treasury, Deposit: decimal.NewFromInt(100000), Role: auth.RoleOperator},
	}
}

// Seeder handles database seeding operations
type Seeder struct {
	balances domain.BalanceService
	tokens   auth.JWTService
	logger   *logger.Logger
}

// NewSeeder creates a new seeder instance. tokens may be nil when no tokens are wanted.
func NewSeeder(balances domain.BalanceService, tokens auth.JWTService, log *logger.Logger) *Seeder {
	return &Seeder{
		balances: balances,
		tokens:   tokens,
		logger:   log,
	}
}

// SeedAccounts deposits the opening balance of every account that has no history yet
func (s *Seeder) SeedAccounts(ctx context.Context, accounts []Account) (int, error) {
	funded := 0
	for _, a := range accounts {
		name := strings.ToLower(strings.TrimSpace(a.Name))
		if !a.Deposit.IsPositive() {
			continue
		}

		history, err := s.balances.GetTransactionHistory(ctx, name, 1)
		if err != nil {
			return funded, fmt.Errorf("check history of %s: %w", name, err)
		}
		if len(history) > 0 {
			s.logger.Info("Account already seeded, skipping", zap.String("account", name))
			continue
		}

		balance, err := s.balances.Credit(ctx, domain.Mutation{
			Account: name,
			Amount:  a.Deposit,
			Type:    domain.TransactionTypeDeposit,
			Metadata: domain.TxMetadata{
				Version:  domain.TxMetadataVersion,
				Transfer: &domain.TransferMetadata{Reference: "seed"},
			},
		})
		if err != nil {
			return funded, fmt.Errorf("fund %s: %w", name, err)
		}
		funded++
		s.logger.Info("Seeded account",
			zap.String("account", name),
			zap.String("balance", balance.String()))
	}
	return funded, nil
}

// IssueTokens signs a development token for every account
func (s *Seeder) IssueTokens(accounts []Account) (map[string]string, error) {
	if s.tokens == nil {
		return nil, nil
	}
	tokens := make(map[string]string, len(accounts))
	for _, a := range accounts {
		name := strings.ToLower(strings.TrimSpace(a.Name))
		token, err := s.tokens.GenerateToken(name, a.Role)
		if err != nil {
			return nil, fmt.Errorf("sign token for %s: %w", name, err)
		}
		tokens[name] = token
	}
	return tokens, nil
}
