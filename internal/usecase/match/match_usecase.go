package match

import (
	"context"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/fairness"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config holds PvP settlement and rating settings
type Config struct {
	BestOf             int
	FeeBps             int
	KFactor            int
	InitialRating      int
	RatingFloor        int
	DrawRatingExchange bool
	MinStake           decimal.Decimal
	MaxStake           decimal.Decimal
	TreasuryAccount    string
	BatchSize          int
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		BestOf:          3,
		FeeBps:          500,
		KFactor:         32,
		InitialRating:   1000,
		RatingFloor:     100,
		MinStake:        decimal.RequireFromString("0.1"),
		MaxStake:        decimal.NewFromInt(50000),
		TreasuryAccount: "treasury",
		BatchSize:       100,
	}
}

// MatchUseCase runs best-of-N series between two accounts and settles the pot
type MatchUseCase struct {
	cfg            Config
	balanceSvc     domain.BalanceService
	matchRepo      domain.MatchRepository
	ratingRepo     domain.RatingRepository
	commitmentRepo domain.CommitmentRepository
	outboxRepo     domain.OutboxRepository
	engine         *fairness.Engine
	db             *gorm.DB
	logger         *logger.Logger
}

// NewMatchUseCase creates a new match usecase
func NewMatchUseCase(
	cfg Config,
	balanceSvc domain.BalanceService,
	matchRepo domain.MatchRepository,
	ratingRepo domain.RatingRepository,
	commitmentRepo domain.CommitmentRepository,
	outboxRepo domain.OutboxRepository,
	engine *fairness.Engine,
	db *gorm.DB,
	logger *logger.Logger,
) domain.MatchUseCase {
	if cfg.BestOf <= 0 {
		cfg.BestOf = 3
	}
	if cfg.KFactor <= 0 {
		cfg.KFactor = 32
	}
	if cfg.InitialRating <= 0 {
		cfg.InitialRating = 1000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	cfg.TreasuryAccount = strings.ToLower(strings.TrimSpace(cfg.TreasuryAccount))
	if cfg.TreasuryAccount == "" {
		cfg.TreasuryAccount = "treasury"
	}
	logger.Info("MatchUseCase initialized successfully",
		zap.Int("bestOf", cfg.BestOf),
		zap.Int("feeBps", cfg.FeeBps),
		zap.Int("kFactor", cfg.KFactor))
	return &MatchUseCase{
		cfg:            cfg,
		balanceSvc:     balanceSvc,
		matchRepo:      matchRepo,
		ratingRepo:     ratingRepo,
		commitmentRepo: commitmentRepo,
		outboxRepo:     outboxRepo,
		engine:         engine,
		db:             db,
		logger:         logger,
	}
}

// WithTransaction returns a usecase whose writes join tx
func (uc *MatchUseCase) WithTransaction(tx *gorm.DB) domain.MatchUseCase {
	clone := *uc
	clone.balanceSvc = uc.balanceSvc.WithTransaction(tx)
	clone.matchRepo = uc.matchRepo.WithTransaction(tx)
	clone.ratingRepo = uc.ratingRepo.WithTransaction(tx)
	clone.commitmentRepo = uc.commitmentRepo.WithTransaction(tx)
	clone.outboxRepo = uc.outboxRepo.WithTransaction(tx)
	clone.db = tx
	return &clone
}

// CreateMatch escrows both stakes and opens the series. Both debits and the match
// row commit together, so a player short of funds leaves nothing behind.
func (uc *MatchUseCase) CreateMatch(ctx context.Context, req domain.CreateMatchRequest) (*domain.Match, error) {
	match, err := uc.newMatch(req)
	if err != nil {
		uc.logger.Warn("Rejected match request",
			zap.String("playerA", req.PlayerA),
			zap.String("playerB", req.PlayerB),
			zap.Error(err))
		return nil, err
	}

	err = uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commitmentRepo := uc.commitmentRepo.WithTransaction(tx)

		commitment, err := fairness.NewCommitment(uc.engine, match.PlayerA, domain.CommitmentPurposeMatch)
		if err != nil {
			return domain.NewInternalError("Failed to generate commitment", err)
		}
		if err := commitmentRepo.Create(ctx, commitment); err != nil {
			return domain.NewStoreUnavailableError("create commitment", err)
		}
		match.CommitmentID = commitment.ID

		matchID := match.ID
		escrow := func(player, opponent string) domain.Mutation {
			return domain.Mutation{
				Account:  player,
				Amount:   match.Stake,
				Type:     domain.TransactionTypeWager,
				GameID:   &matchID,
				GameType: string(match.GameType),
				Metadata: domain.TxMetadata{Match: &domain.MatchTxMetadata{Opponent: opponent}},
			}
		}
		if _, err := uc.balanceSvc.WithTransaction(tx).Apply(ctx, []domain.Mutation{
			escrow(match.PlayerA, match.PlayerB),
			escrow(match.PlayerB, match.PlayerA),
		}); err != nil {
			return err
		}

		if err := uc.matchRepo.WithTransaction(tx).Create(ctx, match); err != nil {
			uc.logger.Error("Failed to create match", zap.String("matchID", match.ID), zap.Error(err))
			return domain.NewStoreUnavailableError("create match", err)
		}
		if err := commitmentRepo.Bind(ctx, commitment.ID, match.ID, "", 0); err != nil {
			return domain.NewStoreUnavailableError("bind commitment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Match created",
		zap.String("matchID", match.ID),
		zap.String("playerA", match.PlayerA),
		zap.String("playerB", match.PlayerB),
		zap.String("stake", match.Stake.String()),
		zap.Int("bestOf", match.BestOf))
	return match, nil
}

// GetMatch returns a match with its rounds
func (uc *MatchUseCase) GetMatch(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("load match", err)
	}
	if match == nil {
		return nil, domain.NewNotFoundError("Match")
	}
	match.Ledger, err = uc.balanceSvc.GetGameLedger(ctx, match.ID)
	if err != nil {
		return nil, err
	}
	return match, nil
}

// ListRecentMatches returns the latest matches, all of them when account is empty
func (uc *MatchUseCase) ListRecentMatches(ctx context.Context, account string, limit int) ([]*domain.Match, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	matches, err := uc.matchRepo.ListRecent(ctx, strings.ToLower(strings.TrimSpace(account)), limit)
	if err != nil {
		uc.logger.Error("Failed to list matches", zap.Error(err))
		return nil, domain.NewStoreUnavailableError("list matches", err)
	}
	return matches, nil
}

// newMatch validates the request and builds the unsaved match
func (uc *MatchUseCase) newMatch(req domain.CreateMatchRequest) (*domain.Match, error) {
	playerA := strings.ToLower(strings.TrimSpace(req.PlayerA))
	playerB := strings.ToLower(strings.TrimSpace(req.PlayerB))
	if playerA == "" || playerB == "" {
		return nil, domain.NewInvalidInputError("player", "both players are required")
	}
	if playerA == playerB {
		return nil, domain.NewInvalidInputError("player", "an account cannot play itself")
	}
	if playerA == uc.cfg.TreasuryAccount || playerB == uc.cfg.TreasuryAccount {
		return nil, domain.NewInvalidInputError("player", "treasury cannot play")
	}

	if err := balance.ValidateAmount(req.Stake); err != nil {
		return nil, err
	}
	if req.Stake.LessThan(uc.cfg.MinStake) {
		return nil, domain.NewInvalidInputError("stake", "must be at least "+uc.cfg.MinStake.String())
	}
	if uc.cfg.MaxStake.IsPositive() && req.Stake.GreaterThan(uc.cfg.MaxStake) {
		return nil, domain.NewInvalidInputError("stake", "must be at most "+uc.cfg.MaxStake.String())
	}

	gameType := req.GameType
	if gameType == "" {
		gameType = domain.GameTypeRPS
	}
	if gameType != domain.GameTypeRPS {
		return nil, domain.NewInvalidInputError("game_type", "unsupported game type "+string(gameType))
	}

	seedA, err := uc.engine.ClientSeed(req.ClientSeedA)
	if err != nil {
		return nil, err
	}
	seedB, err := uc.engine.ClientSeed(req.ClientSeedB)
	if err != nil {
		return nil, err
	}
	if seedA == seedB {
		return nil, domain.NewInvalidInputError("client_seed", "players must use different client seeds")
	}

	return &domain.Match{
		ID:          uuid.NewString(),
		GameType:    gameType,
		PlayerA:     playerA,
		PlayerB:     playerB,
		Stake:       req.Stake,
		BestOf:      uc.cfg.BestOf,
		Status:      domain.MatchStatusInProgress,
		FeeBps:      uc.cfg.FeeBps,
		ClientSeedA: seedA,
		ClientSeedB: seedB,
	}, nil
}

func (uc *MatchUseCase) lock(ctx context.Context, repo domain.MatchRepository, matchID string) (*domain.Match, error) {
	match, err := repo.GetByIDForUpdate(ctx, matchID)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("lock match", err)
	}
	if match == nil {
		return nil, domain.NewNotFoundError("Match")
	}
	return match, nil
}

func durationSince(start, end time.Time) int64 {
	if d := end.Sub(start); d > 0 {
		return d.Milliseconds()
	}
	return 0
}
