package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/lock"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const lockKey = "reconciler:sweep"

// Config holds sweep settings
type Config struct {
	Interval     time.Duration
	GameTimeout  time.Duration
	MatchTimeout time.Duration
}

// Report is the outcome of one sweep
type Report struct {
	Games          domain.StaleReport
	Matches        domain.StaleReport
	ExpiredEntries int64
	Skipped        bool
}

// Reconciler periodically finishes games and matches that were left in an
// intermediate state. Only one instance sweeps at a time across the cluster.
type Reconciler struct {
	casinoUC      domain.CasinoUseCase
	matchUC       domain.MatchUseCase
	matchmakingUC domain.MatchmakingUseCase
	locker        lock.Manager
	logger        *logger.Logger
	cfg           Config
	now           func() time.Time

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewReconciler creates a reconciler
func NewReconciler(
	cfg Config,
	casinoUC domain.CasinoUseCase,
	matchUC domain.MatchUseCase,
	matchmakingUC domain.MatchmakingUseCase,
	locker lock.Manager,
	logger *logger.Logger,
) *Reconciler {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.GameTimeout <= 0 {
		cfg.GameTimeout = 5 * time.Minute
	}
	if cfg.MatchTimeout <= 0 {
		cfg.MatchTimeout = 30 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Reconciler{
		casinoUC:      casinoUC,
		matchUC:       matchUC,
		matchmakingUC: matchmakingUC,
		locker:        locker,
		logger:        logger,
		cfg:           cfg,
		now:           func() time.Time { return time.Now().UTC() },
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Sweep runs one reconciliation pass. A failing step is logged and the
// remaining steps still run.
func (r *Reconciler) Sweep(ctx context.Context) (*Report, error) {
	release, ok, err := r.locker.TryLock(ctx, lockKey)
	if err != nil {
		r.logger.Error("Failed to take reconciler lock", zap.Error(err))
		return nil, err
	}
	if !ok {
		r.logger.Debug("Reconciler sweep skipped, another instance holds the lock")
		return &Report{Skipped: true}, nil
	}
	defer release()

	now := r.now()
	report := &Report{}

	if games, err := r.casinoUC.ReconcileStale(ctx, now.Add(-r.cfg.GameTimeout)); err != nil {
		r.logger.Error("Game reconciliation failed", zap.Error(err))
	} else if games != nil {
		report.Games = *games
	}

	if matches, err := r.matchUC.ReconcileStale(ctx, now.Add(-r.cfg.MatchTimeout)); err != nil {
		r.logger.Error("Match reconciliation failed", zap.Error(err))
	} else if matches != nil {
		report.Matches = *matches
	}

	if expired, err := r.matchmakingUC.CleanupExpired(ctx); err != nil {
		r.logger.Error("Queue cleanup failed", zap.Error(err))
	} else {
		report.ExpiredEntries = expired
	}

	if report.Games != (domain.StaleReport{}) || report.Matches != (domain.StaleReport{}) || report.ExpiredEntries > 0 {
		r.logger.Info("Reconciler sweep finished",
			zap.Int("gamesRefunded", report.Games.Refunded),
			zap.Int("gamesCompleted", report.Games.Completed),
			zap.Int("gamesFailed", report.Games.Failed),
			zap.Int("matchesRefunded", report.Matches.Refunded),
			zap.Int("matchesCompleted", report.Matches.Completed),
			zap.Int("matchesFailed", report.Matches.Failed),
			zap.Int64("expiredEntries", report.ExpiredEntries))
	}
	return report, nil
}

// Start begins periodic sweeps
func (r *Reconciler) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		r.logger.Warn("Reconciler is already running")
		return
	}
	r.isRunning = true
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()

		r.logger.Info("Reconciler started",
			zap.Duration("interval", r.cfg.Interval),
			zap.Duration("gameTimeout", r.cfg.GameTimeout),
			zap.Duration("matchTimeout", r.cfg.MatchTimeout))

		for {
			select {
			case <-r.ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.Sweep(r.ctx); err != nil && r.ctx.Err() == nil {
					r.logger.Error("Reconciler sweep failed", zap.Error(err))
				}
			}
		}
	}()
}

// Stop halts periodic sweeps and waits for the running one
func (r *Reconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}
	r.cancel()
	r.wg.Wait()
	r.isRunning = false
	r.logger.Info("Reconciler stopped")
}
