package balance

import (
	"context"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// BalanceUseCase is the single writer of balance rows and the ledger log
type BalanceUseCase struct {
	balanceRepo domain.BalanceRepository
	ledgerRepo  domain.LedgerRepository
	db          *gorm.DB
	logger      *logger.Logger

	readRetries int
	readBackoff time.Duration
}

// NewBalanceUseCase creates a new balance usecase
func NewBalanceUseCase(
	balanceRepo domain.BalanceRepository,
	ledgerRepo domain.LedgerRepository,
	db *gorm.DB,
	logger *logger.Logger,
) domain.BalanceService {
	logger.Info("BalanceUseCase initialized successfully")
	return &BalanceUseCase{
		balanceRepo: balanceRepo,
		ledgerRepo:  ledgerRepo,
		db:          db,
		logger:      logger,
		readRetries: 3,
		readBackoff: 100 * time.Millisecond,
	}
}

// WithTransaction returns a usecase whose writes join tx.
// Apply on the returned value opens a savepoint instead of a new transaction.
func (uc *BalanceUseCase) WithTransaction(tx *gorm.DB) domain.BalanceService {
	return &BalanceUseCase{
		balanceRepo: uc.balanceRepo.WithTransaction(tx),
		ledgerRepo:  uc.ledgerRepo.WithTransaction(tx),
		db:          tx,
		logger:      uc.logger,
		readRetries: uc.readRetries,
		readBackoff: uc.readBackoff,
	}
}

// Credit adds funds and returns the new available balance
func (uc *BalanceUseCase) Credit(ctx context.Context, m domain.Mutation) (decimal.Decimal, error) {
	if m.Type == "" {
		m.Type = domain.TransactionTypeDeposit
	}
	if m.Type.Direction() != domain.DirectionCredit {
		return decimal.Zero, domain.NewInvalidInputError("type", string(m.Type)+" is not a credit")
	}
	return uc.applyOne(ctx, m)
}

// Debit removes funds and returns the new available balance. It fails with
// InsufficientBalance and leaves nothing written when funds are short.
func (uc *BalanceUseCase) Debit(ctx context.Context, m domain.Mutation) (decimal.Decimal, error) {
	if m.Type == "" {
		m.Type = domain.TransactionTypeWithdraw
	}
	if m.Type.Direction() != domain.DirectionDebit {
		return decimal.Zero, domain.NewInvalidInputError("type", string(m.Type)+" is not a debit")
	}
	return uc.applyOne(ctx, m)
}

func (uc *BalanceUseCase) applyOne(ctx context.Context, m domain.Mutation) (decimal.Decimal, error) {
	rows, err := uc.Apply(ctx, []domain.Mutation{m})
	if err != nil {
		return decimal.Zero, err
	}
	return rows[0].BalanceAfter, nil
}

// Apply writes all mutations atomically. Touched accounts are locked in sorted
// order before anything changes, so concurrent multi-account writes cannot deadlock.
func (uc *BalanceUseCase) Apply(ctx context.Context, mutations []domain.Mutation) ([]*domain.LedgerTransaction, error) {
	if len(mutations) == 0 {
		return nil, domain.NewInvalidInputError("mutations", "at least one mutation is required")
	}

	normalized := make([]domain.Mutation, len(mutations))
	for i, m := range mutations {
		n, err := validateMutation(m)
		if err != nil {
			uc.logger.Warn("Rejected ledger mutation",
				zap.String("account", m.Account),
				zap.String("type", string(m.Type)),
				zap.String("amount", m.Amount.String()),
				zap.Error(err))
			return nil, err
		}
		normalized[i] = n
	}

	var rows []*domain.LedgerTransaction
	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balanceRepo := uc.balanceRepo.WithTransaction(tx)
		ledgerRepo := uc.ledgerRepo.WithTransaction(tx)

		balances, err := uc.lockAccounts(ctx, balanceRepo, sortedAccounts(normalized))
		if err != nil {
			return err
		}

		rows = make([]*domain.LedgerTransaction, 0, len(normalized))
		for _, m := range normalized {
			entry, err := uc.post(balances[m.Account], m)
			if err != nil {
				return err
			}
			if err := ledgerRepo.Append(ctx, entry); err != nil {
				uc.logger.Error("Failed to append ledger row", zap.String("account", m.Account), zap.Error(err))
				return domain.NewStoreUnavailableError("append ledger", err)
			}
			rows = append(rows, entry)
		}

		for _, b := range balances {
			if err := balanceRepo.Save(ctx, b); err != nil {
				uc.logger.Error("Failed to save balance", zap.String("account", b.Account), zap.Error(err))
				return domain.NewStoreUnavailableError("save balance", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "apply ledger mutations")
	}

	for _, r := range rows {
		uc.logger.Info("Ledger transaction recorded",
			zap.Int64("transactionID", r.ID),
			zap.String("account", r.Account),
			zap.String("type", string(r.Type)),
			zap.String("amount", r.Amount.String()),
			zap.String("balanceAfter", r.BalanceAfter.String()))
	}
	return rows, nil
}

// GetBalance returns the account balance, zero for accounts never written.
// Store failures are retried with backoff since the read is idempotent.
func (uc *BalanceUseCase) GetBalance(ctx context.Context, account string) (*domain.Balance, error) {
	account, err := normalizeAccount(account)
	if err != nil {
		return nil, err
	}

	// unknown accounts get their zero row on first read
	var balance *domain.Balance
	err = uc.retryRead(ctx, "get balance", func() error {
		if ensureErr := uc.balanceRepo.EnsureExists(ctx, account); ensureErr != nil {
			return ensureErr
		}
		var readErr error
		balance, readErr = uc.balanceRepo.GetByAccount(ctx, account)
		return readErr
	})
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, domain.NewInternalError("balance row missing after create", nil)
	}
	return balance, nil
}

// GetTransactionHistory returns the newest ledger rows of an account
func (uc *BalanceUseCase) GetTransactionHistory(ctx context.Context, account string, limit int) ([]*domain.LedgerTransaction, error) {
	account, err := normalizeAccount(account)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var rows []*domain.LedgerTransaction
	err = uc.retryRead(ctx, "get transaction history", func() error {
		var readErr error
		rows, readErr = uc.ledgerRepo.ListByAccount(ctx, account, limit)
		return readErr
	})
	return rows, err
}

// GetGameLedger returns every row a game or match produced, oldest first
func (uc *BalanceUseCase) GetGameLedger(ctx context.Context, gameID string) ([]*domain.LedgerTransaction, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, domain.NewInvalidInputError("game_id", "is required")
	}

	var rows []*domain.LedgerTransaction
	err := uc.retryRead(ctx, "get game ledger", func() error {
		var readErr error
		rows, readErr = uc.ledgerRepo.ListByGame(ctx, gameID)
		return readErr
	})
	return rows, err
}

// Reconcile folds the ledger of an account and compares it to the stored balance
func (uc *BalanceUseCase) Reconcile(ctx context.Context, account string) (*domain.ReconciliationReport, error) {
	account, err := normalizeAccount(account)
	if err != nil {
		return nil, err
	}

	var (
		balance *domain.Balance
		rows    []*domain.LedgerTransaction
	)
	err = uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		balance, txErr = uc.balanceRepo.WithTransaction(tx).GetForUpdate(ctx, account)
		if txErr != nil {
			return domain.NewStoreUnavailableError("reconcile", txErr)
		}
		rows, txErr = uc.ledgerRepo.WithTransaction(tx).ListAllByAccount(ctx, account)
		if txErr != nil {
			return domain.NewStoreUnavailableError("reconcile", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "reconcile")
	}

	report := fold(account, rows)
	if balance != nil {
		report.Stored = balance.Available
	}
	report.Consistent = report.BrokenLinkID == nil && report.Stored.Equal(report.Folded)

	if !report.Consistent {
		uc.logger.Error("Ledger reconciliation mismatch",
			zap.String("account", account),
			zap.String("stored", report.Stored.String()),
			zap.String("folded", report.Folded.String()),
			zap.Int("entries", report.Entries),
			zap.Bool("investigation_required", true))
	}
	return report, nil
}
