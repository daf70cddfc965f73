package matchmaking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/lock"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config holds queue settings
type Config struct {
	StakeRangePct  int
	QueueExpiry    time.Duration
	MinStake       decimal.Decimal
	MaxStake       decimal.Decimal
	CandidateLimit int
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		StakeRangePct:  30,
		QueueExpiry:    5 * time.Minute,
		MinStake:       decimal.RequireFromString("0.1"),
		MaxStake:       decimal.NewFromInt(50000),
		CandidateLimit: 10,
	}
}

// MatchmakingUseCase pairs queued accounts into matches
type MatchmakingUseCase struct {
	cfg        Config
	queueRepo  domain.QueueRepository
	ratingRepo domain.RatingRepository
	balanceSvc domain.BalanceService
	matchUC    domain.MatchUseCase
	locker     lock.Manager
	db         *gorm.DB
	logger     *logger.Logger
	now        func() time.Time
}

// NewMatchmakingUseCase creates a new matchmaking usecase
func NewMatchmakingUseCase(
	cfg Config,
	queueRepo domain.QueueRepository,
	ratingRepo domain.RatingRepository,
	balanceSvc domain.BalanceService,
	matchUC domain.MatchUseCase,
	locker lock.Manager,
	db *gorm.DB,
	logger *logger.Logger,
) domain.MatchmakingUseCase {
	if cfg.StakeRangePct < 0 || cfg.StakeRangePct > 100 {
		cfg.StakeRangePct = 30
	}
	if cfg.QueueExpiry <= 0 {
		cfg.QueueExpiry = 5 * time.Minute
	}
	if cfg.CandidateLimit <= 0 {
		cfg.CandidateLimit = 10
	}
	logger.Info("MatchmakingUseCase initialized successfully",
		zap.Int("stakeRangePct", cfg.StakeRangePct),
		zap.Duration("queueExpiry", cfg.QueueExpiry))
	return &MatchmakingUseCase{
		cfg:        cfg,
		queueRepo:  queueRepo,
		ratingRepo: ratingRepo,
		balanceSvc: balanceSvc,
		matchUC:    matchUC,
		locker:     locker,
		db:         db,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// JoinQueue enters account into the queue and pairs it right away when a
// compatible opponent is already waiting. Funds are escrowed only once a match forms.
func (uc *MatchmakingUseCase) JoinQueue(ctx context.Context, req domain.JoinQueueRequest) (*domain.JoinResult, error) {
	account := strings.ToLower(strings.TrimSpace(req.Account))
	if account == "" {
		return nil, domain.NewInvalidInputError("account", "account is required")
	}
	if err := uc.validateStake(req.Stake); err != nil {
		return nil, err
	}
	gameType := req.GameType
	if gameType == "" {
		gameType = domain.GameTypeRPS
	}
	if gameType != domain.GameTypeRPS {
		return nil, domain.NewInvalidInputError("game_type", "unsupported game type "+string(gameType))
	}

	release, err := uc.lockAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	defer release()

	now := uc.now()
	active, err := uc.queueRepo.GetActiveByAccount(ctx, account, now)
	if err != nil {
		return nil, domain.NewStoreUnavailableError("load queue entry", err)
	}
	if active != nil {
		return nil, domain.NewConflictError("account is already waiting in the queue")
	}

	bal, err := uc.balanceSvc.GetBalance(ctx, account)
	if err != nil {
		return nil, err
	}
	if bal.Available.LessThan(req.Stake) {
		return nil, domain.NewInsufficientBalanceError(req.Stake.Sub(bal.Available))
	}

	minStake, maxStake := uc.stakeRange(req.Stake)
	entry := &domain.QueueEntry{
		ID:        uuid.NewString(),
		Account:   account,
		GameType:  gameType,
		Stake:     req.Stake,
		MinStake:  minStake,
		MaxStake:  maxStake,
		Status:    domain.QueueStatusWaiting,
		ExpiresAt: now.Add(uc.cfg.QueueExpiry),
	}
	if err := uc.queueRepo.Create(ctx, entry); err != nil {
		uc.logger.Error("Failed to create queue entry", zap.String("account", account), zap.Error(err))
		return nil, domain.NewStoreUnavailableError("create queue entry", err)
	}

	uc.logger.Info("Joined matchmaking queue",
		zap.String("entryID", entry.ID),
		zap.String("account", account),
		zap.String("stake", entry.Stake.String()),
		zap.String("minStake", entry.MinStake.String()),
		zap.String("maxStake", entry.MaxStake.String()))

	match, err := uc.FindMatch(ctx, entry.ID)
	if err != nil {
		// the entry stays queued; a later join by an opponent can still pair it
		uc.logger.Warn("Immediate pairing failed", zap.String("entryID", entry.ID), zap.Error(err))
		return &domain.JoinResult{Entry: entry}, nil
	}
	if match != nil {
		entry.Status = domain.QueueStatusMatched
		entry.MatchID = &match.ID
	}
	return &domain.JoinResult{Entry: entry, Match: match}, nil
}

// LeaveQueue cancels the waiting entry of account
func (uc *MatchmakingUseCase) LeaveQueue(ctx context.Context, account string) error {
	account = strings.ToLower(strings.TrimSpace(account))
	if account == "" {
		return domain.NewInvalidInputError("account", "account is required")
	}

	release, err := uc.lockAccount(ctx, account)
	if err != nil {
		return err
	}
	defer release()

	entry, err := uc.queueRepo.GetActiveByAccount(ctx, account, uc.now())
	if err != nil {
		return domain.NewStoreUnavailableError("load queue entry", err)
	}
	if entry == nil {
		return domain.NewNotFoundError("Queue entry")
	}
	if err := uc.queueRepo.UpdateStatus(ctx, entry.ID, domain.QueueStatusCancelled, nil); err != nil {
		return domain.NewStoreUnavailableError("cancel queue entry", err)
	}

	uc.logger.Info("Left matchmaking queue", zap.String("entryID", entry.ID), zap.String("account", account))
	return nil
}

// FindMatch pairs a waiting entry with the oldest compatible opponent. It returns
// nil without error when nobody suitable is waiting.
func (uc *MatchmakingUseCase) FindMatch(ctx context.Context, entryID string) (*domain.Match, error) {
	var match *domain.Match
	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		queueRepo := uc.queueRepo.WithTransaction(tx)
		balanceSvc := uc.balanceSvc.WithTransaction(tx)
		now := uc.now()

		entry, err := queueRepo.GetByIDForUpdate(ctx, entryID)
		if err != nil {
			return domain.NewStoreUnavailableError("lock queue entry", err)
		}
		if entry == nil {
			return domain.NewNotFoundError("Queue entry")
		}
		if entry.Status == domain.QueueStatusMatched && entry.MatchID != nil {
			match, err = uc.matchUC.WithTransaction(tx).GetMatch(ctx, *entry.MatchID)
			return err
		}
		if entry.Status != domain.QueueStatusWaiting || !entry.ExpiresAt.After(now) {
			return domain.NewConflictError("queue entry is no longer waiting")
		}

		candidates, err := queueRepo.FindCandidates(ctx, entry, now, uc.cfg.CandidateLimit)
		if err != nil {
			return domain.NewStoreUnavailableError("find queue candidates", err)
		}

		own, err := available(ctx, balanceSvc, entry.Account)
		if err != nil {
			return err
		}
		for _, c := range candidates {
			stake := entry.Stake.Add(c.Stake).Div(decimal.NewFromInt(2)).Truncate(domain.AmountScale)

			// a pricier candidate does not rule out a cheaper one further down
			if own.LessThan(stake) {
				uc.logger.Debug("Skipped queue candidate above own balance",
					zap.String("entryID", entry.ID),
					zap.String("candidateID", c.ID),
					zap.String("stake", stake.String()))
				continue
			}
			theirs, err := available(ctx, balanceSvc, c.Account)
			if err != nil {
				return err
			}
			if theirs.LessThan(stake) {
				if err := queueRepo.UpdateStatus(ctx, c.ID, domain.QueueStatusCancelled, nil); err != nil {
					return domain.NewStoreUnavailableError("cancel queue entry", err)
				}
				uc.logger.Info("Cancelled unaffordable queue entry",
					zap.String("entryID", c.ID),
					zap.String("account", c.Account),
					zap.String("stake", stake.String()))
				continue
			}

			match, err = uc.matchUC.WithTransaction(tx).CreateMatch(ctx, domain.CreateMatchRequest{
				PlayerA:  c.Account,
				PlayerB:  entry.Account,
				Stake:    stake,
				GameType: entry.GameType,
			})
			if err != nil {
				return err
			}
			if err := queueRepo.UpdateStatus(ctx, c.ID, domain.QueueStatusMatched, &match.ID); err != nil {
				return domain.NewStoreUnavailableError("update queue entry", err)
			}
			if err := queueRepo.UpdateStatus(ctx, entry.ID, domain.QueueStatusMatched, &match.ID); err != nil {
				return domain.NewStoreUnavailableError("update queue entry", err)
			}
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if match != nil {
		uc.logger.Info("Queue entries paired",
			zap.String("entryID", entryID),
			zap.String("matchID", match.ID),
			zap.String("playerA", match.PlayerA),
			zap.String("playerB", match.PlayerB),
			zap.String("stake", match.Stake.String()))
	}
	return match, nil
}

// ListQueue returns unexpired waiting entries, oldest first
func (uc *MatchmakingUseCase) ListQueue(ctx context.Context, gameType domain.GameType, limit int) ([]*domain.QueueEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := uc.queueRepo.ListWaiting(ctx, gameType, uc.now(), limit)
	if err != nil {
		uc.logger.Error("Failed to list queue", zap.Error(err))
		return nil, domain.NewStoreUnavailableError("list queue", err)
	}
	return entries, nil
}

// CleanupExpired marks waiting entries past their expiry as EXPIRED
func (uc *MatchmakingUseCase) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := uc.queueRepo.ExpireBefore(ctx, uc.now())
	if err != nil {
		uc.logger.Error("Failed to expire queue entries", zap.Error(err))
		return 0, domain.NewStoreUnavailableError("expire queue entries", err)
	}
	if n > 0 {
		uc.logger.Info("Expired queue entries", zap.Int64("count", n))
	}
	return n, nil
}

func (uc *MatchmakingUseCase) validateStake(stake decimal.Decimal) error {
	if err := balance.ValidateAmount(stake); err != nil {
		return err
	}
	if stake.LessThan(uc.cfg.MinStake) {
		return domain.NewInvalidInputError("stake", "must be at least "+uc.cfg.MinStake.String())
	}
	if uc.cfg.MaxStake.IsPositive() && stake.GreaterThan(uc.cfg.MaxStake) {
		return domain.NewInvalidInputError("stake", "must be at most "+uc.cfg.MaxStake.String())
	}
	return nil
}

// stakeRange is stake ± StakeRangePct percent, never below the minimum stake
func (uc *MatchmakingUseCase) stakeRange(stake decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	spread := domain.ApplyBps(stake, uc.cfg.StakeRangePct*100)
	lo, hi := stake.Sub(spread), stake.Add(spread)
	if lo.LessThan(uc.cfg.MinStake) {
		lo = uc.cfg.MinStake
	}
	return lo, hi
}

func (uc *MatchmakingUseCase) lockAccount(ctx context.Context, account string) (lock.Release, error) {
	release, err := uc.locker.Lock(ctx, "queue:"+account)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, domain.NewConflictError("another queue request for this account is in progress")
		}
		return nil, domain.NewStoreUnavailableError("acquire queue lock", err)
	}
	return release, nil
}

func available(ctx context.Context, balanceSvc domain.BalanceService, account string) (decimal.Decimal, error) {
	bal, err := balanceSvc.GetBalance(ctx, account)
	if err != nil {
		return decimal.Zero, err
	}
	return bal.Available, nil
}
