package casino

import (
	"context"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/fairness"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config holds single-player limits. Values are fixed after start-up.
type Config struct {
	MinWager        decimal.Decimal
	MaxWager        decimal.Decimal
	HouseEdgeBps    int
	TreasuryAccount string
	SettleRetries   int
	RetryBackoff    time.Duration
	BatchSize       int
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		MinWager:        decimal.RequireFromString("0.1"),
		MaxWager:        decimal.NewFromInt(50000),
		HouseEdgeBps:    500,
		TreasuryAccount: "treasury",
		SettleRetries:   3,
		RetryBackoff:    200 * time.Millisecond,
		BatchSize:       100,
	}
}

// CasinoUseCase settles single-player games against the house
type CasinoUseCase struct {
	cfg            Config
	balanceSvc     domain.BalanceService
	gameRepo       domain.GameRepository
	commitmentRepo domain.CommitmentRepository
	outboxRepo     domain.OutboxRepository
	engine         *fairness.Engine
	db             *gorm.DB
	logger         *logger.Logger
}

// NewCasinoUseCase creates a new casino usecase
func NewCasinoUseCase(
	cfg Config,
	balanceSvc domain.BalanceService,
	gameRepo domain.GameRepository,
	commitmentRepo domain.CommitmentRepository,
	outboxRepo domain.OutboxRepository,
	engine *fairness.Engine,
	db *gorm.DB,
	logger *logger.Logger,
) domain.CasinoUseCase {
	cfg.TreasuryAccount = strings.ToLower(strings.TrimSpace(cfg.TreasuryAccount))
	if cfg.TreasuryAccount == "" {
		cfg.TreasuryAccount = "treasury"
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	logger.Info("CasinoUseCase initialized successfully",
		zap.String("minWager", cfg.MinWager.String()),
		zap.String("maxWager", cfg.MaxWager.String()),
		zap.Int("houseEdgeBps", cfg.HouseEdgeBps))
	return &CasinoUseCase{
		cfg:            cfg,
		balanceSvc:     balanceSvc,
		gameRepo:       gameRepo,
		commitmentRepo: commitmentRepo,
		outboxRepo:     outboxRepo,
		engine:         engine,
		db:             db,
		logger:         logger,
	}
}

// Play debits the wager, resolves the throw against the house and settles the payout.
// Each step commits on its own; a crash between steps leaves a DEBITED or RESOLVED
// game for the reconciler.
func (uc *CasinoUseCase) Play(ctx context.Context, req domain.PlayRequest) (*domain.SettlementResult, error) {
	log := uc.logger.WithContext(ctx)

	game, clientSeed, err := uc.newGame(req)
	if err != nil {
		log.Warn("Rejected play request", zap.String("account", req.Account), zap.Error(err))
		return nil, err
	}

	if err := uc.debitAndRecord(ctx, game, clientSeed, strings.TrimSpace(req.CommitmentID)); err != nil {
		return nil, err
	}
	log.Info("Wager accepted",
		zap.String("gameID", game.ID),
		zap.String("account", game.Account),
		zap.String("wager", game.Wager.String()))

	if err := uc.resolve(ctx, game.ID); err != nil {
		return nil, err
	}

	return uc.settleWithRetry(ctx, game.ID)
}

// Settle finishes a game and is safe to call repeatedly; a settled game
// returns its stored result without touching balances again.
func (uc *CasinoUseCase) Settle(ctx context.Context, gameID string) (*domain.SettlementResult, error) {
	game, err := uc.load(ctx, gameID)
	if err != nil {
		return nil, err
	}

	switch game.Status {
	case domain.GameStatusFailed:
		return nil, domain.NewAlreadySettledError("Game", gameID)
	case domain.GameStatusDebited:
		if err := uc.resolve(ctx, gameID); err != nil {
			return nil, err
		}
	}
	return uc.finalize(ctx, gameID)
}

// GetGame returns a game by id
func (uc *CasinoUseCase) GetGame(ctx context.Context, id string) (*domain.Game, error) {
	game, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	game.Ledger, err = uc.balanceSvc.GetGameLedger(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	return game, nil
}

// ListGames returns the latest games of an account
func (uc *CasinoUseCase) ListGames(ctx context.Context, account string, limit int) ([]*domain.Game, error) {
	account = strings.ToLower(strings.TrimSpace(account))
	if account == "" {
		return nil, domain.NewInvalidInputError("account", "is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	games, err := uc.gameRepo.ListByAccount(ctx, account, limit)
	if err != nil {
		uc.logger.Error("Failed to list games", zap.String("account", account), zap.Error(err))
		return nil, domain.NewStoreUnavailableError("list games", err)
	}
	return games, nil
}

// ***** Steps

// newGame validates the request and builds the in-memory CREATED game
func (uc *CasinoUseCase) newGame(req domain.PlayRequest) (*domain.Game, string, error) {
	account := strings.ToLower(strings.TrimSpace(req.Account))
	if account == "" {
		return nil, "", domain.NewInvalidInputError("account", "is required")
	}
	if account == uc.cfg.TreasuryAccount {
		return nil, "", domain.NewInvalidInputError("account", "treasury cannot play")
	}
	if err := uc.validateWager(req.Wager); err != nil {
		return nil, "", err
	}
	if !req.Move.Valid() {
		return nil, "", domain.NewInvalidInputError("move", "must be 1 (rock), 2 (paper) or 3 (scissors)")
	}
	clientSeed, err := uc.engine.ClientSeed(req.ClientSeed)
	if err != nil {
		return nil, "", err
	}

	return &domain.Game{
		ID:           uuid.NewString(),
		GameType:     domain.GameTypeRPS,
		Account:      account,
		Wager:        req.Wager,
		PlayerMove:   req.Move,
		HouseEdgeBps: uc.cfg.HouseEdgeBps,
		Status:       domain.GameStatusCreated,
	}, clientSeed, nil
}

// debitAndRecord takes the wager, stores the game as DEBITED and binds its commitment
// in one transaction. Nothing is written when the debit fails.
func (uc *CasinoUseCase) debitAndRecord(ctx context.Context, game *domain.Game, clientSeed, commitmentID string) error {
	return uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commitmentRepo := uc.commitmentRepo.WithTransaction(tx)

		commitment, err := uc.prepareCommitment(ctx, commitmentRepo, game.Account, commitmentID)
		if err != nil {
			return err
		}

		gameID := game.ID
		_, err = uc.balanceSvc.WithTransaction(tx).Debit(ctx, domain.Mutation{
			Account:  game.Account,
			Amount:   game.Wager,
			Type:     domain.TransactionTypeWager,
			GameID:   &gameID,
			GameType: string(game.GameType),
			Metadata: domain.TxMetadata{Game: &domain.GameTxMetadata{PlayerMove: game.PlayerMove}},
		})
		if err != nil {
			return err
		}

		game.CommitmentID = commitment.ID
		game.Status = domain.GameStatusDebited
		if err := uc.gameRepo.WithTransaction(tx).Create(ctx, game); err != nil {
			uc.logger.Error("Failed to create game", zap.String("gameID", game.ID), zap.Error(err))
			return domain.NewStoreUnavailableError("create game", err)
		}

		if err := commitmentRepo.Bind(ctx, commitment.ID, game.ID, clientSeed, 0); err != nil {
			uc.logger.Error("Failed to bind commitment", zap.String("commitmentID", commitment.ID), zap.Error(err))
			return domain.NewConflictError("Commitment is already bound to another game")
		}
		return nil
	})
}

// prepareCommitment returns the pre-published commitment the player referenced,
// or stores a fresh one
func (uc *CasinoUseCase) prepareCommitment(ctx context.Context, repo domain.CommitmentRepository, account, commitmentID string) (*domain.Commitment, error) {
	if commitmentID == "" {
		c, err := fairness.NewCommitment(uc.engine, account, domain.CommitmentPurposeGame)
		if err != nil {
			return nil, domain.NewInternalError("Failed to generate commitment", err)
		}
		if err := repo.Create(ctx, c); err != nil {
			return nil, domain.NewStoreUnavailableError("create commitment", err)
		}
		return c, nil
	}

	c, err := repo.GetByIDForUpdate(ctx, commitmentID)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("load commitment", err)
	}
	if c == nil || c.Account != account || c.Purpose != domain.CommitmentPurposeGame {
		return nil, domain.NewNotFoundError("Commitment")
	}
	if c.ReferenceID != nil || c.Revealed() {
		return nil, domain.NewConflictError("Commitment has already been used")
	}
	return c, nil
}

// resolve derives the house move and records the outcome. A commitment that
// fails verification refunds the wager and fails the game.
func (uc *CasinoUseCase) resolve(ctx context.Context, gameID string) error {
	var mismatch *domain.Game
	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameRepo := uc.gameRepo.WithTransaction(tx)
		game, err := gameRepo.GetByIDForUpdate(ctx, gameID)
		if err != nil {
			return domain.NewStoreUnavailableError("lock game", err)
		}
		if game == nil {
			return domain.NewNotFoundError("Game")
		}
		if game.Status != domain.GameStatusDebited {
			return nil
		}

		commitment, err := uc.commitmentRepo.WithTransaction(tx).GetByID(ctx, game.CommitmentID)
		if err != nil {
			return domain.NewStoreUnavailableError("load commitment", err)
		}
		if commitment == nil {
			return domain.NewCommitmentMismatchError(game.CommitmentID)
		}
		if err := fairness.CheckIntegrity(commitment, uc.logger); err != nil {
			mismatch = game
			return err
		}

		outcome, err := fairness.DeriveOutcome(commitment.ServerSeed, commitment.ClientSeed, commitment.Nonce, domain.MoveCount)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		game.HouseMove = domain.MoveFromOutcome(outcome)
		game.Result = resultFor(game.PlayerMove, game.HouseMove)
		game.Payout, game.HouseEdge = payoutFor(game.Result, game.Wager, game.HouseEdgeBps)
		game.Status = domain.GameStatusResolved
		game.ResolvedAt = &now

		if err := gameRepo.Update(ctx, game); err != nil {
			return domain.NewStoreUnavailableError("resolve game", err)
		}
		return nil
	})

	if mismatch != nil {
		if failErr := uc.failGame(ctx, mismatch.ID, "commitment verification failed"); failErr != nil {
			uc.logger.Error("Failed to refund game after commitment mismatch",
				zap.String("gameID", mismatch.ID),
				zap.Bool("reconciliation_required", true),
				zap.Error(failErr))
		}
	}
	return err
}

func (uc *CasinoUseCase) load(ctx context.Context, id string) (*domain.Game, error) {
	game, err := uc.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("load game", err)
	}
	if game == nil {
		return nil, domain.NewNotFoundError("Game")
	}
	return game, nil
}
