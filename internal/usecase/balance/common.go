package balance

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ***** Input Validation

func normalizeAccount(account string) (string, error) {
	account = strings.ToLower(strings.TrimSpace(account))
	if account == "" {
		return "", domain.NewInvalidInputError("account", "is required")
	}
	return account, nil
}

// ValidateAmount rejects non-positive amounts and amounts finer than the ledger scale
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.NewInvalidAmountError("")
	}
	if !amount.Equal(amount.Truncate(domain.AmountScale)) {
		return domain.NewInvalidAmountError("Amount cannot have more than 8 decimal places")
	}
	return nil
}

func validateMutation(m domain.Mutation) (domain.Mutation, error) {
	account, err := normalizeAccount(m.Account)
	if err != nil {
		return m, err
	}
	m.Account = account

	if err := ValidateAmount(m.Amount); err != nil {
		return m, err
	}
	if m.Type.Direction() == 0 {
		return m, domain.NewInvalidInputError("type", "unknown transaction type "+string(m.Type))
	}
	if m.Metadata.Version == 0 {
		m.Metadata.Version = domain.TxMetadataVersion
	}
	return m, nil
}

func sortedAccounts(mutations []domain.Mutation) []string {
	seen := make(map[string]struct{}, len(mutations))
	accounts := make([]string, 0, len(mutations))
	for _, m := range mutations {
		if _, ok := seen[m.Account]; ok {
			continue
		}
		seen[m.Account] = struct{}{}
		accounts = append(accounts, m.Account)
	}
	sort.Strings(accounts)
	return accounts
}

// ***** Posting

// lockAccounts creates missing rows and then locks every account in the given order
func (uc *BalanceUseCase) lockAccounts(ctx context.Context, repo domain.BalanceRepository, accounts []string) (map[string]*domain.Balance, error) {
	balances := make(map[string]*domain.Balance, len(accounts))
	for _, account := range accounts {
		if err := repo.EnsureExists(ctx, account); err != nil {
			uc.logger.Error("Failed to create balance row", zap.String("account", account), zap.Error(err))
			return nil, domain.NewStoreUnavailableError("create balance", err)
		}
		b, err := repo.GetForUpdate(ctx, account)
		if err != nil {
			uc.logger.Error("Failed to lock balance", zap.String("account", account), zap.Error(err))
			return nil, domain.NewStoreUnavailableError("lock balance", err)
		}
		if b == nil {
			return nil, domain.NewInternalError("Balance row vanished after creation", nil)
		}
		balances[account] = b
	}
	return balances, nil
}

// post applies m to b in memory and returns the ledger row describing it
func (uc *BalanceUseCase) post(b *domain.Balance, m domain.Mutation) (*domain.LedgerTransaction, error) {
	before := b.Available

	switch m.Type.Direction() {
	case domain.DirectionDebit:
		if before.LessThan(m.Amount) {
			shortfall := m.Amount.Sub(before)
			uc.logger.Info("Debit rejected for insufficient balance",
				zap.String("account", m.Account),
				zap.String("type", string(m.Type)),
				zap.String("shortfall", shortfall.String()))
			return nil, domain.NewInsufficientBalanceError(shortfall)
		}
		b.Available = before.Sub(m.Amount)
	case domain.DirectionCredit:
		b.Available = before.Add(m.Amount)
	}

	switch m.Type {
	case domain.TransactionTypeDeposit:
		b.TotalDeposited = b.TotalDeposited.Add(m.Amount)
	case domain.TransactionTypeWithdraw:
		b.TotalWithdrawn = b.TotalWithdrawn.Add(m.Amount)
	case domain.TransactionTypeWager:
		b.TotalWagered = b.TotalWagered.Add(m.Amount)
	case domain.TransactionTypeWin, domain.TransactionTypeRatingReward:
		b.TotalWon = b.TotalWon.Add(m.Amount)
	}

	return &domain.LedgerTransaction{
		Account:       m.Account,
		Type:          m.Type,
		Amount:        m.Amount,
		BalanceBefore: before,
		BalanceAfter:  b.Available,
		GameID:        m.GameID,
		GameType:      m.GameType,
		Metadata:      datatypes.NewJSONType(m.Metadata),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// fold replays the log of one account. Rows must be in write order.
func fold(account string, rows []*domain.LedgerTransaction) *domain.ReconciliationReport {
	report := &domain.ReconciliationReport{
		Account: account,
		Stored:  decimal.Zero,
		Folded:  decimal.Zero,
		Entries: len(rows),
	}

	running := decimal.Zero
	for _, r := range rows {
		if report.BrokenLinkID == nil && !r.BalanceBefore.Equal(running) {
			id := r.ID
			report.BrokenLinkID = &id
		}
		switch r.Type.Direction() {
		case domain.DirectionCredit:
			running = running.Add(r.Amount)
		case domain.DirectionDebit:
			running = running.Sub(r.Amount)
		}
	}
	report.Folded = running
	return report
}

// ***** Error Handling

func asAppError(err error, operation string) error {
	if _, ok := domain.IsAppError(err); ok {
		return err
	}
	return domain.NewStoreUnavailableError(operation, err)
}

// retryRead runs an idempotent read, retrying store failures with linear backoff
func (uc *BalanceUseCase) retryRead(ctx context.Context, operation string, read func() error) error {
	attempts := uc.readRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = read(); err == nil {
			return nil
		}
		uc.logger.Warn("Store read failed",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return domain.NewStoreUnavailableError(operation, ctx.Err())
		case <-time.After(uc.readBackoff * time.Duration(attempt)):
		}
	}
	return domain.NewStoreUnavailableError(operation, err)
}
