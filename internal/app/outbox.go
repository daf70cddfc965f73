package app

import (
	"context"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/lock"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/outbox"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/reconciler"
	"go.uber.org/fx"
)

func (a *application) InitOutboxProcessor(
	lc fx.Lifecycle,
	outboxRepo domain.OutboxRepository,
	sinks []domain.EventSink,
	log *logger.Logger,
) *outbox.Processor {
	p := outbox.NewProcessor(outbox.Config{
		Interval:   a.config.Outbox.Interval,
		BatchSize:  a.config.Outbox.BatchSize,
		MaxRetries: a.config.Outbox.MaxRetries,
	}, outboxRepo, sinks, log)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.StartBackgroundProcessing()
			return nil
		},
		OnStop: func(context.Context) error {
			p.StopBackgroundProcessing()
			return nil
		},
	})
	return p
}

func (a *application) InitReconciler(
	lc fx.Lifecycle,
	casinoUC domain.CasinoUseCase,
	matchUC domain.MatchUseCase,
	matchmakingUC domain.MatchmakingUseCase,
	locker lock.Manager,
	log *logger.Logger,
) *reconciler.Reconciler {
	r := reconciler.NewReconciler(reconciler.Config{
		Interval:     a.config.Reconciler.Interval,
		GameTimeout:  a.config.Reconciler.GameTimeout,
		MatchTimeout: a.config.Reconciler.MatchTimeout,
	}, casinoUC, matchUC, matchmakingUC, locker, log)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			r.Stop()
			return nil
		},
	})
	return r
}
