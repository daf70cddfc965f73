package app

import (
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/lock"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/casino"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/fairness"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/match"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/matchmaking"
	"gorm.io/gorm"
)

func (a *application) InitFairnessEngine() *fairness.Engine {
	return fairness.NewEngine()
}

func (a *application) InitBalanceService(
	br domain.BalanceRepository,
	lr domain.LedgerRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.BalanceService {
	return balance.NewBalanceUseCase(br, lr, db, log)
}

func (a *application) InitFairnessService(
	engine *fairness.Engine,
	cr domain.CommitmentRepository,
	log *logger.Logger,
) domain.FairnessService {
	return fairness.NewService(engine, cr, log)
}

func (a *application) InitCasinoUseCase(
	bs domain.BalanceService,
	gr domain.GameRepository,
	cr domain.CommitmentRepository,
	or domain.OutboxRepository,
	engine *fairness.Engine,
	db *gorm.DB,
	log *logger.Logger,
) domain.CasinoUseCase {
	return casino.NewCasinoUseCase(casinoConfig(a.config), bs, gr, cr, or, engine, db, log)
}

func (a *application) InitMatchUseCase(
	bs domain.BalanceService,
	mr domain.MatchRepository,
	rr domain.RatingRepository,
	cr domain.CommitmentRepository,
	or domain.OutboxRepository,
	engine *fairness.Engine,
	db *gorm.DB,
	log *logger.Logger,
) domain.MatchUseCase {
	return match.NewMatchUseCase(matchConfig(a.config), bs, mr, rr, cr, or, engine, db, log)
}

func (a *application) InitMatchmakingUseCase(
	qr domain.QueueRepository,
	rr domain.RatingRepository,
	bs domain.BalanceService,
	muc domain.MatchUseCase,
	locker lock.Manager,
	db *gorm.DB,
	log *logger.Logger,
) domain.MatchmakingUseCase {
	cfg := matchmaking.DefaultConfig()
	mm := a.config.Matchmaking
	if mm.StakeRangePct > 0 {
		cfg.StakeRangePct = mm.StakeRangePct
	}
	if mm.QueueExpiry > 0 {
		cfg.QueueExpiry = mm.QueueExpiry
	}
	cfg.MinStake = config.ParseAmount(a.config.Match.MinStake, cfg.MinStake)
	cfg.MaxStake = config.ParseAmount(a.config.Match.MaxStake, cfg.MaxStake)
	return matchmaking.NewMatchmakingUseCase(cfg, qr, rr, bs, muc, locker, db, log)
}

func casinoConfig(conf *config.Config) casino.Config {
	cfg := casino.DefaultConfig()
	c := conf.Casino
	cfg.MinWager = config.ParseAmount(c.MinWager, cfg.MinWager)
	cfg.MaxWager = config.ParseAmount(c.MaxWager, cfg.MaxWager)
	cfg.HouseEdgeBps = bpsOr(c.HouseEdgeBps, cfg.HouseEdgeBps)
	if c.TreasuryAccount != "" {
		cfg.TreasuryAccount = c.TreasuryAccount
	}
	if c.SettleRetries > 0 {
		cfg.SettleRetries = c.SettleRetries
	}
	if c.RetryBackoff > 0 {
		cfg.RetryBackoff = c.RetryBackoff
	}
	if conf.Reconciler.BatchSize > 0 {
		cfg.BatchSize = conf.Reconciler.BatchSize
	}
	return cfg
}

func matchConfig(conf *config.Config) match.Config {
	cfg := match.DefaultConfig()
	m := conf.Match
	if m.BestOf > 0 {
		cfg.BestOf = m.BestOf
	}
	cfg.FeeBps = bpsOr(m.FeeBps, cfg.FeeBps)
	if m.KFactor > 0 {
		cfg.KFactor = m.KFactor
	}
	if m.InitialRating > 0 {
		cfg.InitialRating = m.InitialRating
	}
	if m.RatingFloor > 0 {
		cfg.RatingFloor = m.RatingFloor
	}
	cfg.DrawRatingExchange = m.DrawRatingExchange
	cfg.MinStake = config.ParseAmount(m.MinStake, cfg.MinStake)
	cfg.MaxStake = config.ParseAmount(m.MaxStake, cfg.MaxStake)
	if conf.Casino.TreasuryAccount != "" {
		cfg.TreasuryAccount = conf.Casino.TreasuryAccount
	}
	if conf.Reconciler.BatchSize > 0 {
		cfg.BatchSize = conf.Reconciler.BatchSize
	}
	return cfg
}

// bpsOr keeps an explicitly configured rate, zero included, and falls back when unset or out of range
func bpsOr(v *int, fallback int) int {
	if v == nil || *v < 0 || *v > domain.MaxBps {
		return fallback
	}
	return *v
}
